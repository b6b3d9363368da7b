package dto

// Tipos de movimentação no contrato wire.
const (
	WireTypeInbound    = "inbound"
	WireTypeOutbound   = "outbound"
	WireTypeTransfer   = "transfer"
	WireTypeAdjustment = "adjustment"
)

// ProductRefDTO denormalização mínima do produto embutida na movimentação.
// Usada como fallback de exibição quando o material não está no cache local.
type ProductRefDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// MovimentationDTO representação wire de uma movimentação.
type MovimentationDTO struct {
	ID                  string         `json:"id"`
	Type                string         `json:"type"`
	ProductID           string         `json:"product_id"`
	MovimentedBy        int            `json:"movimented_by"`
	Quantity            int            `json:"quantity"`
	ProductOldQuantity  *int           `json:"product_old_quantity,omitempty"`
	ProductNewQuantity  *int           `json:"product_new_quantity,omitempty"`
	LocalStorage        *string        `json:"local_storage,omitempty"`
	ProductOldLocal     *string        `json:"product_old_local_storage,omitempty"`
	Appointment         *string        `json:"appointment,omitempty"`
	CreatedAt           string         `json:"created_at"`
	UpdatedAt           string         `json:"updated_at,omitempty"`
	Product             *ProductRefDTO `json:"product,omitempty"`
}

// MovimentationListDTO envelope de GET /api/movimentations.
type MovimentationListDTO struct {
	Success bool               `json:"success"`
	Count   int                `json:"count"`
	Data    []MovimentationDTO `json:"data"`
}

// MovimentationCreatedDTO envelope de POST /api/movimentations.
type MovimentationCreatedDTO struct {
	Success bool             `json:"success"`
	Data    MovimentationDTO `json:"data"`
}

// CreateMovimentationDTO payload de POST /api/movimentations.
type CreateMovimentationDTO struct {
	Type         string `json:"type"`
	ProductID    string `json:"product_id"`
	MovimentedBy int    `json:"movimented_by"`
	Quantity     int    `json:"quantity"`
	NewLocation  string `json:"new_location,omitempty"`
	Notes        string `json:"notes,omitempty"`
}
