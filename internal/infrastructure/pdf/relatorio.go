// Package pdf gera o relatório de estoque em PDF a partir do agregado do
// dashboard.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório de Estoque  │  Data de geração           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: materiais / quantidade / valor / baixo / zerado      │
//	│  TABELA: por categoria                                      │
//	│  TABELA: por local de armazenamento                         │
//	│  TABELA: movimentações por tipo                              │
//	│  LISTA: movimentações recentes                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/estoque-client/internal/domain/catalog"
	"github.com/jhoicas/estoque-client/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// GeradorRelatorio gera o relatório de estoque usando Maroto v2.
type GeradorRelatorio struct{}

// NewGeradorRelatorio constrói o gerador.
func NewGeradorRelatorio() *GeradorRelatorio { return &GeradorRelatorio{} }

// Gerar gera o PDF e devolve seus bytes.
func (g *GeradorRelatorio) Gerar(painel entity.PainelEstoque, geradoEm time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(geradoEm))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(painel.Produtos))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("POR CATEGORIA"))
	m.AddRows(grupoHeaderRow("Categoria"))
	for _, r := range grupoRows(painel.Produtos.PorCategoria, catalog.LabelCategoria) {
		m.AddRows(r)
	}

	m.AddRows(sectionRow("POR LOCAL DE ARMAZENAMENTO"))
	m.AddRows(grupoHeaderRow("Local"))
	for _, r := range grupoRows(painel.Produtos.PorLocal, catalog.LabelLocal) {
		m.AddRows(r)
	}

	m.AddRows(sectionRow("MOVIMENTAÇÕES POR TIPO"))
	for _, r := range tipoRows(painel.Movimentacoes) {
		m.AddRows(r)
	}

	m.AddRows(sectionRow("MOVIMENTAÇÕES RECENTES"))
	for _, r := range recentesRows(painel.Movimentacoes.Recentes) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func headerRow(geradoEm time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE ESTOQUE", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Almoxarifado de TI", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em: "+geradoEm.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// kpiRow: totais do lado de produtos em uma linha.
func kpiRow(p entity.EstatisticasProdutos) core.Row {
	kpi := func(label, valor string) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(valor, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5, Align: align.Center, Color: colorPrimary}),
		)
	}
	return row.New(13).Add(
		col.New(1),
		kpi("Materiais", strconv.Itoa(p.TotalMateriais)),
		kpi("Quantidade", strconv.Itoa(p.QuantidadeTotal)),
		kpi("Valor total", "R$ "+p.ValorTotal.StringFixed(2)),
		kpi("Estoque baixo", strconv.Itoa(p.EstoqueBaixo)),
		kpi("Sem estoque", strconv.Itoa(p.SemEstoque)),
		col.New(1),
	)
}

func sectionRow(titulo string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3,
		}),
	))
}

func grupoHeaderRow(primeira string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h(primeira, 5, align.Left),
		h("Materiais", 2, align.Right),
		h("Quantidade", 2, align.Right),
		h("Valor", 3, align.Right),
	)
}

func grupoRows(grupos []entity.EstatisticaGrupo, label func(string) string) []core.Row {
	result := make([]core.Row, 0, len(grupos))
	for _, g := range grupos {
		result = append(result, row.New(5).Add(
			col.New(5).Add(text.New(label(g.Chave), props.Text{Size: 8, Align: align.Left})),
			col.New(2).Add(text.New(strconv.Itoa(g.TotalMateriais), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(strconv.Itoa(g.QuantidadeTotal), props.Text{Size: 8, Align: align.Right})),
			col.New(3).Add(text.New("R$ "+g.ValorTotal.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return result
}

var rotuloTipo = map[entity.TipoMovimentacao]string{
	entity.TipoEntrada:       "Entradas",
	entity.TipoSaida:         "Saídas",
	entity.TipoTransferencia: "Transferências",
	entity.TipoAjuste:        "Ajustes",
}

func tipoRows(m entity.EstatisticasMovimentacoes) []core.Row {
	rows := []core.Row{
		row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Total de movimentações: %d", m.Total), props.Text{Size: 8}),
		)),
	}
	for _, d := range m.Detalhe {
		rows = append(rows, row.New(5).Add(
			col.New(5).Add(text.New(rotuloTipo[d.Tipo], props.Text{Size: 8})),
			col.New(3).Add(text.New(fmt.Sprintf("%d ocorrências", d.Ocorrencias), props.Text{Size: 8, Align: align.Right})),
			col.New(4).Add(text.New(fmt.Sprintf("%d unidades", d.QuantidadeTotal), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

func recentesRows(recentes []entity.Movimentacao) []core.Row {
	if len(recentes) == 0 {
		return []core.Row{row.New(5).Add(col.New(12).Add(
			text.New("Sem movimentações no período.", props.Text{Size: 8, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(recentes))
	for _, mov := range recentes {
		nome := mov.MaterialNome
		if nome == "" {
			nome = mov.MaterialID
		}
		result = append(result, row.New(5).Add(
			col.New(2).Add(text.New(mov.Data, props.Text{Size: 8})),
			col.New(2).Add(text.New(rotuloTipo[mov.Tipo], props.Text{Size: 8})),
			col.New(6).Add(text.New(nome, props.Text{Size: 8})),
			col.New(2).Add(text.New(strconv.Itoa(mov.Quantidade), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return result
}
