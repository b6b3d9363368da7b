package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-client/internal/application/dto"
	"github.com/jhoicas/estoque-client/internal/domain/entity"
	"github.com/jhoicas/estoque-client/internal/domain/repository"
	"github.com/jhoicas/estoque-client/pkg/logger"
)

// MovimentacaoStore dono da coleção de movimentações em cache. Depende do
// cache de materiais apenas para leitura (enriquecimento de exibição); nunca
// muta o estado dele.
type MovimentacaoStore struct {
	api       repository.MovimentationAPI
	materiais repository.MaterialCache
	log       *logger.Logger

	mu            sync.RWMutex
	movimentacoes []entity.Movimentacao
	loading       bool
	err           string
	initialized   bool
}

// NewMovimentacaoStore constrói o store. A dependência de materiais é
// injetada como porto somente leitura, substituível por stub em testes.
func NewMovimentacaoStore(api repository.MovimentationAPI, materiais repository.MaterialCache, log *logger.Logger) *MovimentacaoStore {
	return &MovimentacaoStore{api: api, materiais: materiais, log: log}
}

// CriarMovimentacaoInput entrada de criação no vocabulário da UI.
type CriarMovimentacaoInput struct {
	Tipo          entity.TipoMovimentacao
	MaterialID    string
	Quantidade    int
	ResponsavelID int
	NovoLocal     string // transferências
	Observacoes   string
}

// Buscar busca a coleção de movimentações. Antes disso garante a carga do
// cache de materiais: movimentações mapeadas contra um cache vazio
// degradariam em silêncio (campos denormalizados ausentes), então a ordem é
// invariante, não recomendação. Se a carga de materiais falha, a busca falha
// com o mesmo erro e nada é armazenado.
func (s *MovimentacaoStore) Buscar(ctx context.Context) error {
	s.begin()
	defer s.end()

	if err := s.materiais.EnsureLoaded(ctx); err != nil {
		s.fail("erro ao buscar movimentações", err)
		return err
	}

	list, err := s.api.List(ctx)
	if err != nil {
		s.fail("erro ao buscar movimentações", err)
		return err
	}

	mapped := make([]entity.Movimentacao, 0, len(list.Data))
	for _, m := range list.Data {
		mapped = append(mapped, movimentacaoFromDTO(m, s.materiais))
	}

	s.mu.Lock()
	s.movimentacoes = mapped
	s.initialized = true
	s.mu.Unlock()

	s.log.Debug().Int("total", len(mapped)).Msg("movimentações carregadas")
	return nil
}

// EnsureLoaded popula a coleção no máximo uma vez por sessão (sem dedup de
// chamadas concorrentes, mesma semântica do MaterialStore).
func (s *MovimentacaoStore) EnsureLoaded(ctx context.Context) error {
	s.mu.RLock()
	ok := s.initialized
	s.mu.RUnlock()
	if ok {
		return nil
	}
	return s.Buscar(ctx)
}

// BuscarPorMaterial busca as movimentações de um material específico sem
// tocar na coleção em cache.
func (s *MovimentacaoStore) BuscarPorMaterial(ctx context.Context, materialID string) ([]entity.Movimentacao, error) {
	s.begin()
	defer s.end()

	if err := s.materiais.EnsureLoaded(ctx); err != nil {
		s.fail("erro ao buscar movimentações do material", err)
		return nil, err
	}

	list, err := s.api.ListByProduct(ctx, materialID)
	if err != nil {
		s.fail("erro ao buscar movimentações do material", err)
		return nil, err
	}

	mapped := make([]entity.Movimentacao, 0, len(list))
	for _, m := range list {
		mapped = append(mapped, movimentacaoFromDTO(m, s.materiais))
	}
	return mapped, nil
}

// Criar registra a movimentação e anexa o resultado mapeado. O servidor é a
// única autoridade sobre a quantidade resultante do material: este store não
// muta o MaterialStore (sem dual-write; o chamador refaz a busca de
// materiais quando precisar da quantidade nova).
func (s *MovimentacaoStore) Criar(ctx context.Context, input CriarMovimentacaoInput) (entity.Movimentacao, error) {
	s.begin()
	defer s.end()

	payload := dto.CreateMovimentationDTO{
		Type:         tipoToWire(input.Tipo),
		ProductID:    input.MaterialID,
		MovimentedBy: input.ResponsavelID,
		Quantity:     input.Quantidade,
		NewLocation:  input.NovoLocal,
		Notes:        input.Observacoes,
	}

	created, err := s.api.Create(ctx, payload)
	if err != nil {
		s.fail("erro ao registrar movimentação", err)
		return entity.Movimentacao{}, err
	}

	mov := movimentacaoFromDTO(*created, s.materiais)
	s.mu.Lock()
	s.movimentacoes = append(s.movimentacoes, mov)
	s.mu.Unlock()
	return mov, nil
}

// Movimentacoes devolve uma cópia da coleção em cache.
func (s *MovimentacaoStore) Movimentacoes() []entity.Movimentacao {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Movimentacao, len(s.movimentacoes))
	copy(out, s.movimentacoes)
	return out
}

// Loading indica operação de rede em andamento.
func (s *MovimentacaoStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err devolve a última mensagem de erro registrada (vazia sem erro).
func (s *MovimentacaoStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Initialized indica se a coleção já foi populada nesta sessão.
func (s *MovimentacaoStore) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

func (s *MovimentacaoStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *MovimentacaoStore) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *MovimentacaoStore) fail(msg string, err error) {
	s.mu.Lock()
	s.err = fmt.Sprintf("%s: %v", msg, err)
	s.mu.Unlock()
	s.log.Error().Err(err).Msg(msg)
}

// tipoFromWire traduz o enum wire para o vocabulário da UI. Qualquer tipo
// wire não reconhecido cai em entrada: fallback definido do contrato, não
// omissão.
func tipoFromWire(t string) entity.TipoMovimentacao {
	switch t {
	case dto.WireTypeOutbound:
		return entity.TipoSaida
	case dto.WireTypeTransfer:
		return entity.TipoTransferencia
	case dto.WireTypeAdjustment:
		return entity.TipoAjuste
	}
	return entity.TipoEntrada
}

// tipoToWire traduz o vocabulário da UI para o enum wire (inverso exato de
// tipoFromWire sobre os quatro tipos definidos).
func tipoToWire(t entity.TipoMovimentacao) string {
	switch t {
	case entity.TipoSaida:
		return dto.WireTypeOutbound
	case entity.TipoTransferencia:
		return dto.WireTypeTransfer
	case entity.TipoAjuste:
		return dto.WireTypeAdjustment
	}
	return dto.WireTypeInbound
}

// movimentacaoFromDTO mapeia a representação wire para o domínio, resolvendo
// o material no cache quando o lookup está disponível. Material ausente não é
// erro: os campos de exibição caem para a denormalização enviada pelo
// servidor (quando houver) e o valor fica nil.
func movimentacaoFromDTO(m dto.MovimentationDTO, materiais repository.MaterialLookup) entity.Movimentacao {
	mov := entity.Movimentacao{
		ID:                 m.ID,
		Tipo:               tipoFromWire(m.Type),
		MaterialID:         m.ProductID,
		Quantidade:         m.Quantity,
		ResponsavelID:      m.MovimentedBy,
		Responsavel:        strconv.Itoa(m.MovimentedBy),
		Observacoes:        deref(m.Appointment),
		Data:               dataResumida(m.CreatedAt),
		QuantidadeAnterior: m.ProductOldQuantity,
		QuantidadeNova:     m.ProductNewQuantity,
		NovoLocal:          deref(m.LocalStorage),
	}

	var material entity.Material
	found := false
	if materiais != nil {
		material, found = materiais.GetByID(m.ProductID)
	}

	switch {
	case found:
		mov.MaterialCodigo = material.Codigo
		mov.MaterialNome = material.Nome
		mov.Categoria = material.Categoria
		if material.Valor != nil {
			total := material.Valor.Mul(decimal.NewFromInt(int64(m.Quantity)))
			mov.Valor = &total
		}
	case m.Product != nil:
		mov.MaterialNome = m.Product.Name
		mov.Categoria = m.Product.Category
	}

	return mov
}

// dataResumida reduz um timestamp ISO para YYYY-MM-DD; vazio vira a data de
// hoje.
func dataResumida(iso string) string {
	if len(iso) >= 10 {
		return iso[:10]
	}
	return time.Now().Format("2006-01-02")
}
