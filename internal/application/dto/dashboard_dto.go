package dto

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// GroupStatsDTO quebra de totais por categoria ou por local.
type GroupStatsDTO struct {
	Category       string          `json:"category,omitempty"`
	Location       string          `json:"location,omitempty"`
	TotalMaterials int             `json:"totalMaterials"`
	TotalQuantity  int             `json:"totalQuantity"`
	TotalValue     decimal.Decimal `json:"totalValue"`
}

// ProductStatsDTO corpo de GET /api/products/stats/dashboard.
type ProductStatsDTO struct {
	TotalMaterials     int             `json:"totalMaterials"`
	TotalQuantity      int             `json:"totalQuantity"`
	TotalStockValue    decimal.Decimal `json:"totalStockValue"`
	LowStockProducts   int             `json:"lowStockProducts"`
	OutOfStockProducts int             `json:"outOfStockProducts"`
	StatsByCategory    []GroupStatsDTO `json:"statsByCategory"`
	StatsByLocation    []GroupStatsDTO `json:"statsByLocation"`
}

// ProductStatsResponseDTO envelope do endpoint de estatísticas de produtos.
type ProductStatsResponseDTO struct {
	Success bool            `json:"success"`
	Data    ProductStatsDTO `json:"data"`
}

// TypeStatsDTO contagem e quantidade acumulada por tipo wire.
type TypeStatsDTO struct {
	Type          string `json:"type"`
	Count         int    `json:"count"`
	TotalQuantity int    `json:"totalQuantity"`
}

// MovimentationStatsDTO corpo de GET /api/movimentations/stats/dashboard.
type MovimentationStatsDTO struct {
	TotalMovimentations  int                `json:"totalMovimentations"`
	MovimentationsByType map[string]int     `json:"movimentationsByType"`
	StatsByType          []TypeStatsDTO     `json:"statsByType"`
	RecentMovimentations []MovimentationDTO `json:"recentMovimentations"`
}

// MovimentationStatsResponseDTO envelope do endpoint de estatísticas de
// movimentações.
type MovimentationStatsResponseDTO struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Data    MovimentationStatsDTO `json:"data"`
}

// DashboardFilters filtros opcionais dos endpoints de estatísticas.
type DashboardFilters struct {
	Year      int
	Month     int
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Limit     int    // apenas movimentações recentes
}

// Query converte os filtros em parâmetros de query (zeros são omitidos).
func (f *DashboardFilters) Query() map[string]string {
	if f == nil {
		return nil
	}
	q := map[string]string{
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	}
	if f.Year > 0 {
		q["year"] = strconv.Itoa(f.Year)
	}
	if f.Month > 0 {
		q["month"] = strconv.Itoa(f.Month)
	}
	if f.Limit > 0 {
		q["limit"] = strconv.Itoa(f.Limit)
	}
	return q
}
