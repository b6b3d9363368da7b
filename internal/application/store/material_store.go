// Package store contém os stores de sincronização do cliente: cada um é dono
// de uma coleção em memória buscada do serviço remoto, faz o mapeamento
// wire -> domínio e expõe semântica de carga idempotente (ensure-loaded).
//
// Concorrência: os stores são seguros para uso por múltiplas goroutines. Os
// locks nunca são mantidos através de I/O de rede, então operações em voo
// podem se intercalar; as mutações são substituição da coleção inteira
// (busca) ou append/replace/filter de um elemento, e a última escrita vence.
package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-client/internal/application/dto"
	"github.com/jhoicas/estoque-client/internal/domain/entity"
	"github.com/jhoicas/estoque-client/internal/domain/repository"
	"github.com/jhoicas/estoque-client/pkg/logger"
)

// MaterialStore dono da coleção de materiais em cache.
type MaterialStore struct {
	api repository.ProductAPI
	log *logger.Logger

	mu          sync.RWMutex
	materiais   []entity.Material
	loading     bool
	err         string
	initialized bool
}

var _ repository.MaterialCache = (*MaterialStore)(nil)

// NewMaterialStore constrói o store com o porto da API de produtos.
func NewMaterialStore(api repository.ProductAPI, log *logger.Logger) *MaterialStore {
	return &MaterialStore{api: api, log: log}
}

// CriarMaterialInput entrada de criação no vocabulário da UI.
type CriarMaterialInput struct {
	Nome        string
	Categoria   string
	Codigo      string
	NumeroSerie string
	Quantidade  int
	Minimo      int
	Valor       *decimal.Decimal
	Local       string
}

// AtualizarMaterialInput entrada de atualização parcial: campos nil são
// omitidos do payload e nunca sobrescrevem o valor no servidor.
type AtualizarMaterialInput struct {
	Nome        *string
	Categoria   *string
	Codigo      *string
	NumeroSerie *string
	Quantidade  *int
	Minimo      *int
	Valor       *decimal.Decimal
	Local       *string
}

// Buscar busca a coleção remota com filtros opcionais. Em caso de sucesso a
// coleção local é substituída inteira pelo resultado mapeado; em caso de
// falha o estado anterior permanece intocado e o erro é propagado.
func (s *MaterialStore) Buscar(ctx context.Context, filtros *dto.ProductFilters) error {
	s.begin()
	defer s.end()

	list, err := s.api.List(ctx, filtros)
	if err != nil {
		s.fail("erro ao buscar materiais", err)
		return err
	}

	mapped := make([]entity.Material, 0, len(list.Data))
	for _, p := range list.Data {
		mapped = append(mapped, materialFromDTO(p))
	}

	s.mu.Lock()
	s.materiais = mapped
	s.initialized = true
	s.mu.Unlock()

	s.log.Debug().Int("total", len(mapped)).Msg("materiais carregados")
	return nil
}

// EnsureLoaded popula a coleção no máximo uma vez por sessão. Chamadas
// concorrentes antes da primeira conclusão podem disparar duas buscas; a
// operação é idempotente e os resultados convergem.
func (s *MaterialStore) EnsureLoaded(ctx context.Context) error {
	s.mu.RLock()
	ok := s.initialized
	s.mu.RUnlock()
	if ok {
		return nil
	}
	return s.Buscar(ctx, nil)
}

// Criar mapeia a entrada para o DTO wire, envia e anexa o resultado mapeado
// à coleção. O store não pré-valida além da forma dos tipos; rejeições de
// payload são do servidor.
func (s *MaterialStore) Criar(ctx context.Context, input CriarMaterialInput, atorID int) (entity.Material, error) {
	s.begin()
	defer s.end()

	payload := dto.CreateProductDTO{
		Name:            input.Nome,
		Category:        input.Categoria,
		Codigo:          input.Codigo,
		SerialNumber:    input.NumeroSerie,
		MinimalQuantity: input.Minimo,
		Quantity:        input.Quantidade,
		Value:           input.Valor,
		LocalStorage:    input.Local,
		CreatedBy:       atorID,
	}

	created, err := s.api.Create(ctx, payload)
	if err != nil {
		s.fail("erro ao criar material", err)
		return entity.Material{}, err
	}

	m := materialFromDTO(*created)
	s.mu.Lock()
	s.materiais = append(s.materiais, m)
	s.mu.Unlock()
	return m, nil
}

// Atualizar envia uma atualização parcial e substitui a entrada local
// correspondente preservando a ordem da coleção. Se o id não existe
// localmente a atualização remota ainda vale, mas não há reflexo local.
func (s *MaterialStore) Atualizar(ctx context.Context, id string, input AtualizarMaterialInput, atorID int) (entity.Material, error) {
	s.begin()
	defer s.end()

	payload := dto.UpdateProductDTO{
		Name:            input.Nome,
		Category:        input.Categoria,
		Codigo:          input.Codigo,
		SerialNumber:    input.NumeroSerie,
		MinimalQuantity: input.Minimo,
		Quantity:        input.Quantidade,
		Value:           input.Valor,
		LocalStorage:    input.Local,
		UpdatedBy:       atorID,
	}

	updated, err := s.api.Update(ctx, id, payload, atorID)
	if err != nil {
		s.fail("erro ao atualizar material", err)
		return entity.Material{}, err
	}

	m := materialFromDTO(*updated)
	s.mu.Lock()
	for i := range s.materiais {
		if s.materiais[i].ID == id {
			s.materiais[i] = m
			break
		}
	}
	s.mu.Unlock()
	return m, nil
}

// Remover envia o delete e, só em caso de sucesso, retira a entrada local.
func (s *MaterialStore) Remover(ctx context.Context, id string) error {
	s.begin()
	defer s.end()

	if err := s.api.Delete(ctx, id); err != nil {
		s.fail("erro ao remover material", err)
		return err
	}

	s.mu.Lock()
	kept := s.materiais[:0:0]
	for _, m := range s.materiais {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.materiais = kept
	s.mu.Unlock()
	return nil
}

// GetByID consulta síncrona no cache, sem rede. Usada por outros stores.
func (s *MaterialStore) GetByID(id string) (entity.Material, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.materiais {
		if m.ID == id {
			return m, true
		}
	}
	return entity.Material{}, false
}

// Materiais devolve uma cópia da coleção em cache.
func (s *MaterialStore) Materiais() []entity.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Material, len(s.materiais))
	copy(out, s.materiais)
	return out
}

// Loading indica operação de rede em andamento.
func (s *MaterialStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err devolve a última mensagem de erro registrada (vazia sem erro).
func (s *MaterialStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Initialized indica se a coleção já foi populada nesta sessão.
func (s *MaterialStore) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

func (s *MaterialStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

// end limpa a flag de loading independentemente do desfecho.
func (s *MaterialStore) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *MaterialStore) fail(msg string, err error) {
	s.mu.Lock()
	s.err = fmt.Sprintf("%s: %v", msg, err)
	s.mu.Unlock()
	s.log.Error().Err(err).Msg(msg)
}

// materialFromDTO mapeia a representação wire para o domínio. Um código sem
// separador vira patrimônio; a classificação é só de apresentação.
func materialFromDTO(p dto.ProductDTO) entity.Material {
	codigo := ""
	if p.Codigo != nil {
		codigo = *p.Codigo
	}

	m := entity.Material{
		ID:          p.ID,
		Codigo:      codigo,
		Nome:        p.Name,
		Categoria:   p.Category,
		Quantidade:  p.Quantity,
		Minimo:      p.MinimalQuantity,
		Valor:       p.Value,
		NumeroSerie: deref(p.SerialNumber),
		Local:       deref(p.LocalStorage),
	}
	if p.CreatedBy != 0 {
		m.CriadoPor = strconv.Itoa(p.CreatedBy)
	}
	if entity.CodigoEhPatrimonio(codigo) {
		m.Patrimonio = codigo
	}
	return m
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
