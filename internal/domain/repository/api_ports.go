// Package repository define os portos consumidos pelos stores (DIP): as
// fachadas do serviço remoto e a dependência somente leitura entre stores.
package repository

import (
	"context"

	"github.com/jhoicas/estoque-client/internal/application/dto"
	"github.com/jhoicas/estoque-client/internal/domain/entity"
)

// ProductAPI porto da coleção remota de produtos.
type ProductAPI interface {
	List(ctx context.Context, filters *dto.ProductFilters) (*dto.ProductListDTO, error)
	GetByID(ctx context.Context, id string) (*dto.ProductDTO, error)
	Create(ctx context.Context, payload dto.CreateProductDTO) (*dto.ProductDTO, error)
	// Update envia o id do ator no header x-rfid junto ao corpo JSON.
	Update(ctx context.Context, id string, payload dto.UpdateProductDTO, atorID int) (*dto.ProductDTO, error)
	Delete(ctx context.Context, id string) error
}

// MovimentationAPI porto da coleção remota de movimentações.
type MovimentationAPI interface {
	List(ctx context.Context) (*dto.MovimentationListDTO, error)
	GetByID(ctx context.Context, id string) (*dto.MovimentationDTO, error)
	ListByProduct(ctx context.Context, productID string) ([]dto.MovimentationDTO, error)
	Create(ctx context.Context, payload dto.CreateMovimentationDTO) (*dto.MovimentationDTO, error)
}

// DashboardAPI porto dos dois endpoints independentes de estatísticas.
type DashboardAPI interface {
	ProductStats(ctx context.Context, filters *dto.DashboardFilters) (*dto.ProductStatsDTO, error)
	MovimentationStats(ctx context.Context, filters *dto.DashboardFilters) (*dto.MovimentationStatsDTO, error)
}

// UserAPI porto da lista remota de usuários autorizados.
type UserAPI interface {
	List(ctx context.Context) ([]dto.UserDTO, error)
	Create(ctx context.Context, matricula int) (*dto.UserDTO, error)
	Delete(ctx context.Context, id string) error
}

// MaterialLookup dependência somente leitura entre stores: consulta síncrona
// por id, sem rede. O consumidor nunca muta o estado do dono.
type MaterialLookup interface {
	GetByID(id string) (entity.Material, bool)
}

// MaterialCache é o que o store de movimentações exige do store de materiais:
// consulta por id e garantia de carga prévia da coleção.
type MaterialCache interface {
	MaterialLookup
	EnsureLoaded(ctx context.Context) error
}
