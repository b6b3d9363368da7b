package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/estoque-client/internal/application/store"
	"github.com/jhoicas/estoque-client/internal/domain/catalog"
	"github.com/jhoicas/estoque-client/internal/infrastructure/api"
	"github.com/jhoicas/estoque-client/internal/infrastructure/pdf"
	"github.com/jhoicas/estoque-client/pkg/config"
	"github.com/jhoicas/estoque-client/pkg/logger"
)

func main() {
	painel := flag.Bool("painel", false, "exibe o dashboard de estoque")
	materiais := flag.Bool("materiais", false, "lista os materiais em estoque")
	movimentacoes := flag.Bool("movimentacoes", false, "lista as movimentações registradas")
	usuarios := flag.Bool("usuarios", false, "lista os usuários autorizados")
	relatorio := flag.Bool("relatorio", false, "gera o relatório de estoque em PDF")
	saida := flag.String("saida", "", "caminho do relatório PDF (padrão: REPORT_OUTPUT)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando cliente de estoque")

	client := api.New(cfg.API.BaseURL, cfg.API.Timeout(), log)
	materialStore := store.NewMaterialStore(api.NewProductsService(client), log)
	movimentacaoStore := store.NewMovimentacaoStore(api.NewMovimentationsService(client), materialStore, log)
	dashboardStore := store.NewDashboardStore(api.NewDashboardService(client), log)
	usuarioStore := store.NewUsuarioStore(api.NewUsersService(client), log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch {
	case *materiais:
		err = listarMateriais(ctx, materialStore)
	case *movimentacoes:
		err = listarMovimentacoes(ctx, movimentacaoStore)
	case *usuarios:
		err = listarUsuarios(ctx, usuarioStore)
	case *relatorio:
		destino := *saida
		if destino == "" {
			destino = cfg.API.ReportOutput
		}
		err = gerarRelatorio(ctx, dashboardStore, destino)
	case *painel:
		err = exibirPainel(ctx, dashboardStore)
	default:
		flag.Usage()
		return
	}

	if err != nil {
		log.Fatal().Err(err).Msg("operação falhou")
	}
}

func listarMateriais(ctx context.Context, s *store.MaterialStore) error {
	if err := s.EnsureLoaded(ctx); err != nil {
		return err
	}
	for _, m := range s.Materiais() {
		valor := "—"
		if m.Valor != nil {
			valor = "R$ " + m.Valor.StringFixed(2)
		}
		fmt.Printf("%-36s  %-30s  %-15s  qtd=%-5d  min=%-5d  %s\n",
			m.ID, m.Nome, catalog.LabelCategoria(m.Categoria), m.Quantidade, m.Minimo, valor)
	}
	return nil
}

func listarMovimentacoes(ctx context.Context, s *store.MovimentacaoStore) error {
	if err := s.EnsureLoaded(ctx); err != nil {
		return err
	}
	for _, mov := range s.Movimentacoes() {
		fmt.Printf("%s  %-14s  %-30s  qtd=%-5d  resp=%s\n",
			mov.Data, mov.Tipo, mov.MaterialNome, mov.Quantidade, mov.Responsavel)
	}
	return nil
}

func listarUsuarios(ctx context.Context, s *store.UsuarioStore) error {
	if err := s.EnsureLoaded(ctx); err != nil {
		return err
	}
	for _, u := range s.Usuarios() {
		fmt.Printf("%-36s  %-30s  matrícula=%d  %s\n", u.ID, u.Nome, u.Matricula, u.Cargo)
	}
	return nil
}

func exibirPainel(ctx context.Context, s *store.DashboardStore) error {
	if err := s.EnsureLoaded(ctx); err != nil {
		return err
	}
	painel, ok := s.Dados()
	if !ok {
		return fmt.Errorf("dashboard sem dados")
	}

	p := painel.Produtos
	fmt.Printf("Materiais: %d   Quantidade: %d   Valor: R$ %s\n",
		p.TotalMateriais, p.QuantidadeTotal, p.ValorTotal.StringFixed(2))
	fmt.Printf("Estoque baixo: %d   Sem estoque: %d\n", p.EstoqueBaixo, p.SemEstoque)
	for _, g := range p.PorCategoria {
		fmt.Printf("  %-35s materiais=%-4d qtd=%-5d R$ %s\n",
			catalog.LabelCategoria(g.Chave), g.TotalMateriais, g.QuantidadeTotal, g.ValorTotal.StringFixed(2))
	}
	fmt.Printf("Movimentações: %d\n", painel.Movimentacoes.Total)
	for tipo, n := range painel.Movimentacoes.PorTipo {
		fmt.Printf("  %-15s %d\n", tipo, n)
	}
	return nil
}

func gerarRelatorio(ctx context.Context, s *store.DashboardStore, saida string) error {
	if err := s.EnsureLoaded(ctx); err != nil {
		return err
	}
	painel, ok := s.Dados()
	if !ok {
		return fmt.Errorf("dashboard sem dados")
	}

	doc, err := pdf.NewGeradorRelatorio().Gerar(painel, time.Now())
	if err != nil {
		return err
	}
	if err := os.WriteFile(saida, doc, 0o644); err != nil {
		return fmt.Errorf("gravar relatório: %w", err)
	}
	fmt.Printf("relatório gerado em %s (%d bytes)\n", saida, len(doc))
	return nil
}
