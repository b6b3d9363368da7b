package entity

import "github.com/shopspring/decimal"

// PainelEstoque agrega as estatísticas do dashboard em um único valor.
// É uma projeção derivada, sem identidade própria além de "última busca".
type PainelEstoque struct {
	Produtos      EstatisticasProdutos
	Movimentacoes EstatisticasMovimentacoes
}

// EstatisticasProdutos estatísticas do lado de produtos.
type EstatisticasProdutos struct {
	TotalMateriais  int
	QuantidadeTotal int
	ValorTotal      decimal.Decimal
	EstoqueBaixo    int
	SemEstoque      int
	PorCategoria    []EstatisticaGrupo
	PorLocal        []EstatisticaGrupo
}

// EstatisticaGrupo quebra de totais por categoria ou por local.
type EstatisticaGrupo struct {
	Chave           string // valor da categoria ou do local
	TotalMateriais  int
	QuantidadeTotal int
	ValorTotal      decimal.Decimal
}

// EstatisticasMovimentacoes estatísticas do lado de movimentações.
type EstatisticasMovimentacoes struct {
	Total    int
	PorTipo  map[TipoMovimentacao]int
	Detalhe  []EstatisticaTipo
	Recentes []Movimentacao
}

// EstatisticaTipo contagem e quantidade acumulada por tipo de movimentação.
type EstatisticaTipo struct {
	Tipo            TipoMovimentacao
	Ocorrencias     int
	QuantidadeTotal int
}
