package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Material representa um item de estoque do almoxarifado.
// Quantidade e Minimo nunca são negativos; o ID é imutável após a criação.
// A unicidade do código é garantida pelo servidor, não localmente.
type Material struct {
	ID          string
	Codigo      string
	Nome        string
	Categoria   string
	Quantidade  int
	Minimo      int // limiar de estoque baixo (Quantidade <= Minimo)
	Valor       *decimal.Decimal
	Patrimonio  string // preenchido somente quando Codigo é classificado como patrimônio
	NumeroSerie string
	Local       string
	CriadoPor   string
}

// EstoqueBaixo indica se a quantidade atingiu o limiar mínimo.
func (m Material) EstoqueBaixo() bool {
	return m.Quantidade <= m.Minimo
}

// SemEstoque indica quantidade zerada.
func (m Material) SemEstoque() bool {
	return m.Quantidade == 0
}

// CodigoEhPatrimonio classifica um código como patrimônio: não vazio e sem o
// separador "-" (códigos com separador são SKUs de outro formato). A
// classificação é apenas de apresentação e não afeta armazenamento nem
// unicidade.
func CodigoEhPatrimonio(codigo string) bool {
	return codigo != "" && !strings.Contains(codigo, "-")
}
