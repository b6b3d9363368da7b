package api

import (
	"context"

	"github.com/jhoicas/estoque-client/internal/application/dto"
	"github.com/jhoicas/estoque-client/internal/domain/repository"
)

// Caminhos fixos do contrato wire de movimentações.
const (
	movimentationsPath      = "/api/movimentations"
	movimentationsStatsPath = "/api/movimentations/stats/dashboard"
)

// MovimentationsService fachada de /api/movimentations.
type MovimentationsService struct {
	client *Client
}

var _ repository.MovimentationAPI = (*MovimentationsService)(nil)

// NewMovimentationsService constrói a fachada sobre o executor genérico.
func NewMovimentationsService(client *Client) *MovimentationsService {
	return &MovimentationsService{client: client}
}

// List busca a coleção completa de movimentações.
func (s *MovimentationsService) List(ctx context.Context) (*dto.MovimentationListDTO, error) {
	var out dto.MovimentationListDTO
	if err := s.client.Get(ctx, movimentationsPath, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID busca uma movimentação pelo identificador.
func (s *MovimentationsService) GetByID(ctx context.Context, id string) (*dto.MovimentationDTO, error) {
	var out dto.MovimentationDTO
	if err := s.client.Get(ctx, movimentationsPath+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByProduct busca as movimentações de um produto específico.
func (s *MovimentationsService) ListByProduct(ctx context.Context, productID string) ([]dto.MovimentationDTO, error) {
	var out dto.MovimentationListDTO
	if err := s.client.Get(ctx, movimentationsPath+"/product/"+productID, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Create registra uma movimentação. O servidor é a única autoridade sobre a
// alteração resultante na quantidade do produto.
func (s *MovimentationsService) Create(ctx context.Context, payload dto.CreateMovimentationDTO) (*dto.MovimentationDTO, error) {
	var out dto.MovimentationCreatedDTO
	if err := s.client.Post(ctx, movimentationsPath, payload, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
