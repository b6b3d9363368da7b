package api

import (
	"context"
	"strconv"

	"github.com/jhoicas/estoque-client/internal/application/dto"
	"github.com/jhoicas/estoque-client/internal/domain/repository"
)

// Caminhos fixos do contrato wire de produtos.
const (
	productsPath      = "/api/products"
	productsStatsPath = "/api/products/stats/dashboard"
)

// ProductsService fachada de /api/products.
type ProductsService struct {
	client *Client
}

var _ repository.ProductAPI = (*ProductsService)(nil)

// NewProductsService constrói a fachada sobre o executor genérico.
func NewProductsService(client *Client) *ProductsService {
	return &ProductsService{client: client}
}

// List busca a coleção de produtos com filtros opcionais.
func (s *ProductsService) List(ctx context.Context, filters *dto.ProductFilters) (*dto.ProductListDTO, error) {
	var out dto.ProductListDTO
	if err := s.client.Get(ctx, productsPath, filters.Query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID busca um produto pelo identificador.
func (s *ProductsService) GetByID(ctx context.Context, id string) (*dto.ProductDTO, error) {
	var out dto.ProductDTO
	if err := s.client.Get(ctx, productsPath+"/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create cria um produto.
func (s *ProductsService) Create(ctx context.Context, payload dto.CreateProductDTO) (*dto.ProductDTO, error) {
	var out dto.ProductDTO
	if err := s.client.Post(ctx, productsPath, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update atualiza parcialmente um produto; o ator vai no header x-rfid.
func (s *ProductsService) Update(ctx context.Context, id string, payload dto.UpdateProductDTO, atorID int) (*dto.ProductDTO, error) {
	headers := map[string]string{"x-rfid": strconv.Itoa(atorID)}
	var out dto.ProductDTO
	if err := s.client.Patch(ctx, productsPath+"/"+id, payload, headers, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete remove um produto.
func (s *ProductsService) Delete(ctx context.Context, id string) error {
	var out dto.MessageDTO
	return s.client.Delete(ctx, productsPath+"/"+id, &out)
}
