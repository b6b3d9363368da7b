package store_test

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-client/internal/application/dto"
	"github.com/jhoicas/estoque-client/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dublês dos portos remotos
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// fakeProductAPI dublê programável de repository.ProductAPI.
type fakeProductAPI struct {
	mu sync.Mutex

	list      *dto.ProductListDTO
	listErr   error
	listCalls int
	listGate  chan struct{} // quando não-nil, List bloqueia até o canal fechar

	created   *dto.ProductDTO
	createErr error

	updated    *dto.ProductDTO
	updateErr  error
	lastUpdate *dto.UpdateProductDTO

	deleteErr error
}

func (f *fakeProductAPI) List(ctx context.Context, filters *dto.ProductFilters) (*dto.ProductListDTO, error) {
	f.mu.Lock()
	f.listCalls++
	gate := f.listGate
	list, err := f.list, f.listErr
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	if list == nil {
		return &dto.ProductListDTO{Success: true}, nil
	}
	return list, nil
}

func (f *fakeProductAPI) GetByID(ctx context.Context, id string) (*dto.ProductDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.list != nil {
		for i := range f.list.Data {
			if f.list.Data[i].ID == id {
				p := f.list.Data[i]
				return &p, nil
			}
		}
	}
	return nil, errors.New("produto não encontrado")
}

func (f *fakeProductAPI) Create(ctx context.Context, payload dto.CreateProductDTO) (*dto.ProductDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeProductAPI) Update(ctx context.Context, id string, payload dto.UpdateProductDTO, atorID int) (*dto.ProductDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastUpdate = &payload
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeProductAPI) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deleteErr
}

func (f *fakeProductAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

// fakeMovimentationAPI dublê programável de repository.MovimentationAPI.
type fakeMovimentationAPI struct {
	mu sync.Mutex

	list      *dto.MovimentationListDTO
	listErr   error
	listCalls int

	byProduct []dto.MovimentationDTO

	created    *dto.MovimentationDTO
	createErr  error
	lastCreate *dto.CreateMovimentationDTO
}

func (f *fakeMovimentationAPI) List(ctx context.Context) (*dto.MovimentationListDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.list == nil {
		return &dto.MovimentationListDTO{Success: true}, nil
	}
	return f.list, nil
}

func (f *fakeMovimentationAPI) GetByID(ctx context.Context, id string) (*dto.MovimentationDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.list != nil {
		for i := range f.list.Data {
			if f.list.Data[i].ID == id {
				m := f.list.Data[i]
				return &m, nil
			}
		}
	}
	return nil, errors.New("movimentação não encontrada")
}

func (f *fakeMovimentationAPI) ListByProduct(ctx context.Context, productID string) ([]dto.MovimentationDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byProduct, nil
}

func (f *fakeMovimentationAPI) Create(ctx context.Context, payload dto.CreateMovimentationDTO) (*dto.MovimentationDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCreate = &payload
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	// eco: devolve a movimentação como o servidor a registraria
	m := dto.MovimentationDTO{
		ID:           "mov-echo",
		Type:         payload.Type,
		ProductID:    payload.ProductID,
		MovimentedBy: payload.MovimentedBy,
		Quantity:     payload.Quantity,
		CreatedAt:    "2026-08-30T12:00:00Z",
	}
	if payload.Notes != "" {
		notes := payload.Notes
		m.Appointment = &notes
	}
	return &m, nil
}

func (f *fakeMovimentationAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

// fakeDashboardAPI dublê programável de repository.DashboardAPI.
type fakeDashboardAPI struct {
	mu sync.Mutex

	produtos    *dto.ProductStatsDTO
	produtosErr error

	movimentacoes    *dto.MovimentationStatsDTO
	movimentacoesErr error

	produtosCalls      int
	movimentacoesCalls int
}

func (f *fakeDashboardAPI) ProductStats(ctx context.Context, filters *dto.DashboardFilters) (*dto.ProductStatsDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.produtosCalls++
	if f.produtosErr != nil {
		return nil, f.produtosErr
	}
	if f.produtos == nil {
		return &dto.ProductStatsDTO{}, nil
	}
	return f.produtos, nil
}

func (f *fakeDashboardAPI) MovimentationStats(ctx context.Context, filters *dto.DashboardFilters) (*dto.MovimentationStatsDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movimentacoesCalls++
	if f.movimentacoesErr != nil {
		return nil, f.movimentacoesErr
	}
	if f.movimentacoes == nil {
		return &dto.MovimentationStatsDTO{}, nil
	}
	return f.movimentacoes, nil
}

// fakeUserAPI dublê programável de repository.UserAPI.
type fakeUserAPI struct {
	mu sync.Mutex

	list      []dto.UserDTO
	listErr   error
	listCalls int

	created   *dto.UserDTO
	createErr error
	deleteErr error
}

func (f *fakeUserAPI) List(ctx context.Context) ([]dto.UserDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeUserAPI) Create(ctx context.Context, matricula int) (*dto.UserDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	return &dto.UserDTO{ID: "user-echo", Matricula: matricula}, nil
}

func (f *fakeUserAPI) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deleteErr
}

// ──────────────────────────────────────────────────────────────────────────────
// Builders de fixtures
// ──────────────────────────────────────────────────────────────────────────────

func produtoDTO(id, nome, categoria, codigo string, qtd, min int, valor *decimal.Decimal) dto.ProductDTO {
	p := dto.ProductDTO{
		ID:              id,
		Name:            nome,
		Category:        categoria,
		Quantity:        qtd,
		MinimalQuantity: min,
		Value:           valor,
	}
	if codigo != "" {
		p.Codigo = &codigo
	}
	return p
}

func dec(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}
