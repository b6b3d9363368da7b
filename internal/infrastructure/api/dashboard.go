package api

import (
	"context"

	"github.com/jhoicas/estoque-client/internal/application/dto"
	"github.com/jhoicas/estoque-client/internal/domain/repository"
)

// DashboardService fachada dos dois endpoints independentes de estatísticas.
type DashboardService struct {
	client *Client
}

var _ repository.DashboardAPI = (*DashboardService)(nil)

// NewDashboardService constrói a fachada sobre o executor genérico.
func NewDashboardService(client *Client) *DashboardService {
	return &DashboardService{client: client}
}

// ProductStats busca as estatísticas do lado de produtos.
func (s *DashboardService) ProductStats(ctx context.Context, filters *dto.DashboardFilters) (*dto.ProductStatsDTO, error) {
	var out dto.ProductStatsResponseDTO
	if err := s.client.Get(ctx, productsStatsPath, filters.Query(), &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// MovimentationStats busca as estatísticas do lado de movimentações.
func (s *DashboardService) MovimentationStats(ctx context.Context, filters *dto.DashboardFilters) (*dto.MovimentationStatsDTO, error) {
	var out dto.MovimentationStatsResponseDTO
	if err := s.client.Get(ctx, movimentationsStatsPath, filters.Query(), &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
