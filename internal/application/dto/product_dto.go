package dto

import "github.com/shopspring/decimal"

// ProductDTO representação wire de um produto em GET /api/products.
// Value pode chegar como número ou string; decimal.Decimal aceita ambos.
type ProductDTO struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	Codigo          *string          `json:"codigo"`
	SerialNumber    *string          `json:"serial_number"`
	MinimalQuantity int              `json:"minimal_quantity"`
	Quantity        int              `json:"quantity"`
	Value           *decimal.Decimal `json:"value"`
	LocalStorage    *string          `json:"local_storage"`
	CreatedBy       int              `json:"created_by"`
	CreatedAt       string           `json:"created_at,omitempty"`
	UpdatedAt       string           `json:"updated_at,omitempty"`
}

// ProductListDTO envelope de GET /api/products.
type ProductListDTO struct {
	Success bool         `json:"success"`
	Count   int          `json:"count"`
	Data    []ProductDTO `json:"data"`
}

// CreateProductDTO payload de POST /api/products.
type CreateProductDTO struct {
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	Codigo          string           `json:"codigo,omitempty"`
	SerialNumber    string           `json:"serial_number,omitempty"`
	MinimalQuantity int              `json:"minimal_quantity"`
	Quantity        int              `json:"quantity"`
	Value           *decimal.Decimal `json:"value,omitempty"`
	LocalStorage    string           `json:"local_storage,omitempty"`
	CreatedBy       int              `json:"created_by"`
}

// UpdateProductDTO payload de PATCH /api/products/{id}. Campos nil não são
// serializados, preservando a semântica de atualização parcial no servidor.
type UpdateProductDTO struct {
	Name            *string          `json:"name,omitempty"`
	Category        *string          `json:"category,omitempty"`
	Codigo          *string          `json:"codigo,omitempty"`
	SerialNumber    *string          `json:"serial_number,omitempty"`
	MinimalQuantity *int             `json:"minimal_quantity,omitempty"`
	Quantity        *int             `json:"quantity,omitempty"`
	Value           *decimal.Decimal `json:"value,omitempty"`
	LocalStorage    *string          `json:"local_storage,omitempty"`
	UpdatedBy       int              `json:"updated_by"`
}

// Status de estoque aceitos pelo filtro stock_status.
const (
	StockStatusIn  = "in_stock"
	StockStatusLow = "low_stock"
	StockStatusOut = "out_stock"
)

// ProductFilters filtros de GET /api/products. Valores vazios são omitidos
// da query string.
type ProductFilters struct {
	Category     string
	StockStatus  string
	Codigo       string
	SerialNumber string
	LocalStorage string
}

// Query converte os filtros em parâmetros de query.
func (f *ProductFilters) Query() map[string]string {
	if f == nil {
		return nil
	}
	return map[string]string{
		"category":      f.Category,
		"stock_status":  f.StockStatus,
		"codigo":        f.Codigo,
		"serial_number": f.SerialNumber,
		"local_storage": f.LocalStorage,
	}
}
