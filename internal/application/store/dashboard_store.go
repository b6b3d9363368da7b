package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/estoque-client/internal/application/dto"
	"github.com/jhoicas/estoque-client/internal/domain/entity"
	"github.com/jhoicas/estoque-client/internal/domain/repository"
	"github.com/jhoicas/estoque-client/pkg/logger"
)

// DashboardStore agrega os dois endpoints independentes de estatísticas em um
// único valor composto.
type DashboardStore struct {
	api repository.DashboardAPI
	log *logger.Logger

	mu          sync.RWMutex
	painel      entity.PainelEstoque
	hasData     bool
	loading     bool
	err         string
	initialized bool
}

// NewDashboardStore constrói o store com o porto de estatísticas.
func NewDashboardStore(api repository.DashboardAPI, log *logger.Logger) *DashboardStore {
	return &DashboardStore{api: api, log: log}
}

// BuscarDados emite as duas requisições e funde os resultados sob um único
// valor. Se qualquer uma falhar, a busca inteira falha e o composto anterior
// permanece intocado: sem merge parcial.
func (s *DashboardStore) BuscarDados(ctx context.Context) (entity.PainelEstoque, error) {
	s.begin()
	defer s.end()

	produtos, err := s.api.ProductStats(ctx, nil)
	if err != nil {
		s.fail("erro ao buscar dados do dashboard (produtos)", err)
		return entity.PainelEstoque{}, err
	}

	movimentacoes, err := s.api.MovimentationStats(ctx, nil)
	if err != nil {
		s.fail("erro ao buscar dados do dashboard (movimentações)", err)
		return entity.PainelEstoque{}, err
	}

	painel := entity.PainelEstoque{
		Produtos:      produtosStatsFromDTO(*produtos),
		Movimentacoes: movimentacoesStatsFromDTO(*movimentacoes),
	}

	s.mu.Lock()
	s.painel = painel
	s.hasData = true
	s.initialized = true
	s.mu.Unlock()

	return painel, nil
}

// EnsureLoaded busca o agregado no máximo uma vez por sessão.
func (s *DashboardStore) EnsureLoaded(ctx context.Context) error {
	s.mu.RLock()
	ok := s.initialized
	s.mu.RUnlock()
	if ok {
		return nil
	}
	_, err := s.BuscarDados(ctx)
	return err
}

// Dados devolve o último agregado buscado, se houver.
func (s *DashboardStore) Dados() (entity.PainelEstoque, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.painel, s.hasData
}

// Loading indica operação de rede em andamento.
func (s *DashboardStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err devolve a última mensagem de erro registrada (vazia sem erro).
func (s *DashboardStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Initialized indica se o agregado já foi buscado nesta sessão.
func (s *DashboardStore) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

func (s *DashboardStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *DashboardStore) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *DashboardStore) fail(msg string, err error) {
	s.mu.Lock()
	s.err = fmt.Sprintf("%s: %v", msg, err)
	s.mu.Unlock()
	s.log.Error().Err(err).Msg(msg)
}

func produtosStatsFromDTO(d dto.ProductStatsDTO) entity.EstatisticasProdutos {
	porCategoria := make([]entity.EstatisticaGrupo, 0, len(d.StatsByCategory))
	for _, g := range d.StatsByCategory {
		porCategoria = append(porCategoria, entity.EstatisticaGrupo{
			Chave:           g.Category,
			TotalMateriais:  g.TotalMaterials,
			QuantidadeTotal: g.TotalQuantity,
			ValorTotal:      g.TotalValue,
		})
	}
	porLocal := make([]entity.EstatisticaGrupo, 0, len(d.StatsByLocation))
	for _, g := range d.StatsByLocation {
		porLocal = append(porLocal, entity.EstatisticaGrupo{
			Chave:           g.Location,
			TotalMateriais:  g.TotalMaterials,
			QuantidadeTotal: g.TotalQuantity,
			ValorTotal:      g.TotalValue,
		})
	}
	return entity.EstatisticasProdutos{
		TotalMateriais:  d.TotalMaterials,
		QuantidadeTotal: d.TotalQuantity,
		ValorTotal:      d.TotalStockValue,
		EstoqueBaixo:    d.LowStockProducts,
		SemEstoque:      d.OutOfStockProducts,
		PorCategoria:    porCategoria,
		PorLocal:        porLocal,
	}
}

// movimentacoesStatsFromDTO traduz os tipos wire para o vocabulário da UI.
// As movimentações recentes são mapeadas sem lookup de material (o dashboard
// não depende do MaterialStore): valem os campos denormalizados do servidor.
func movimentacoesStatsFromDTO(d dto.MovimentationStatsDTO) entity.EstatisticasMovimentacoes {
	porTipo := make(map[entity.TipoMovimentacao]int, len(d.MovimentationsByType))
	for wire, n := range d.MovimentationsByType {
		porTipo[tipoFromWire(wire)] += n
	}

	detalhe := make([]entity.EstatisticaTipo, 0, len(d.StatsByType))
	for _, t := range d.StatsByType {
		detalhe = append(detalhe, entity.EstatisticaTipo{
			Tipo:            tipoFromWire(t.Type),
			Ocorrencias:     t.Count,
			QuantidadeTotal: t.TotalQuantity,
		})
	}

	recentes := make([]entity.Movimentacao, 0, len(d.RecentMovimentations))
	for _, m := range d.RecentMovimentations {
		recentes = append(recentes, movimentacaoFromDTO(m, nil))
	}

	return entity.EstatisticasMovimentacoes{
		Total:    d.TotalMovimentations,
		PorTipo:  porTipo,
		Detalhe:  detalhe,
		Recentes: recentes,
	}
}
