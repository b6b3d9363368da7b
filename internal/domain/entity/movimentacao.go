package entity

import "github.com/shopspring/decimal"

// TipoMovimentacao vocabulário de tipos de movimentação na UI.
type TipoMovimentacao string

// Tipos de movimentação de estoque.
const (
	TipoEntrada       TipoMovimentacao = "entrada"
	TipoSaida         TipoMovimentacao = "saida"
	TipoTransferencia TipoMovimentacao = "transferencia"
	TipoAjuste        TipoMovimentacao = "ajuste"
)

// Movimentacao representa uma movimentação registrada sobre um Material.
// É imutável após a criação neste cliente (semântica de log de auditoria,
// sem update/delete).
type Movimentacao struct {
	ID             string
	Tipo           TipoMovimentacao
	MaterialID     string
	MaterialCodigo string // denormalizado do Material em cache
	MaterialNome   string // denormalizado; cai para o nome enviado pelo servidor
	Quantidade     int    // sempre positivo; o sentido vem do Tipo
	ResponsavelID  int
	Responsavel    string
	Observacoes    string
	Data           string // YYYY-MM-DD
	Valor          *decimal.Decimal // valor unitário × quantidade; nil sem valor unitário
	Categoria      string

	// Snapshot opcional enviado pelo servidor
	QuantidadeAnterior *int
	QuantidadeNova     *int
	NovoLocal          string // transferências
}
