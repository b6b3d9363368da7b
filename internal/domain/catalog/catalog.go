// Package catalog define os vocabulários fixos de categorias e locais de
// armazenamento usados pelos formulários e filtros do cliente.
package catalog

// Item par valor/rótulo de um catálogo fixo.
type Item struct {
	Value string
	Label string
}

// Locais catálogo fixo de locais de armazenamento.
var Locais = []Item{
	{Value: "prateleira_nivel_01", Label: "Prateleira Nível 01"},
	{Value: "prateleira_nivel_02", Label: "Prateleira Nível 02"},
	{Value: "prateleira_nivel_03", Label: "Prateleira Nível 03"},
	{Value: "gaveta_01", Label: "Gaveta 01"},
	{Value: "gaveta_02", Label: "Gaveta 02"},
	{Value: "gaveta_03", Label: "Gaveta 03"},
	{Value: "gaveta_04", Label: "Gaveta 04"},
	{Value: "organizador_01", Label: "Organizador 01"},
	{Value: "organizador_02", Label: "Organizador 02"},
}

// Categorias catálogo fixo de categorias de material.
var Categorias = []Item{
	{Value: "hardware", Label: "Hardware (Notebooks, PCs)"},
	{Value: "perifericos", Label: "Periféricos (Mouses, Teclados)"},
	{Value: "cabos", Label: "Cabos e Adaptadores"},
	{Value: "rede", Label: "Equipamentos de Rede"},
	{Value: "consumiveis", Label: "Consumíveis (Tintas, Pilhas)"},
	{Value: "monitor", Label: "Monitores"},
	{Value: "automacao", Label: "Automação"},
	{Value: "outros", Label: "Outros"},
}

// LabelCategoria devolve o rótulo de exibição de uma categoria, ou o próprio
// valor quando fora do catálogo.
func LabelCategoria(value string) string {
	return label(Categorias, value)
}

// LabelLocal devolve o rótulo de exibição de um local, ou o próprio valor
// quando fora do catálogo.
func LabelLocal(value string) string {
	return label(Locais, value)
}

func label(items []Item, value string) string {
	for _, it := range items {
		if it.Value == value {
			return it.Label
		}
	}
	return value
}
