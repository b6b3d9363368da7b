package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/estoque-client/internal/application/dto"
	"github.com/jhoicas/estoque-client/internal/domain/entity"
	"github.com/jhoicas/estoque-client/internal/domain/repository"
	"github.com/jhoicas/estoque-client/pkg/logger"
)

// UsuarioStore dono da lista de usuários autorizados, carregada uma vez por
// sessão (padrão load-once, igual aos demais stores).
type UsuarioStore struct {
	api repository.UserAPI
	log *logger.Logger

	mu          sync.RWMutex
	usuarios    []entity.Usuario
	loading     bool
	err         string
	initialized bool
}

// NewUsuarioStore constrói o store com o porto da API de usuários.
func NewUsuarioStore(api repository.UserAPI, log *logger.Logger) *UsuarioStore {
	return &UsuarioStore{api: api, log: log}
}

// Buscar busca a lista remota, substituindo a coleção local em caso de
// sucesso.
func (s *UsuarioStore) Buscar(ctx context.Context) error {
	s.begin()
	defer s.end()

	list, err := s.api.List(ctx)
	if err != nil {
		s.fail("erro ao buscar usuários", err)
		return err
	}

	mapped := make([]entity.Usuario, 0, len(list))
	for _, u := range list {
		mapped = append(mapped, usuarioFromDTO(u))
	}

	s.mu.Lock()
	s.usuarios = mapped
	s.initialized = true
	s.mu.Unlock()
	return nil
}

// EnsureLoaded busca a lista no máximo uma vez por sessão, a menos que uma
// nova busca explícita seja pedida.
func (s *UsuarioStore) EnsureLoaded(ctx context.Context) error {
	s.mu.RLock()
	ok := s.initialized
	s.mu.RUnlock()
	if ok {
		return nil
	}
	return s.Buscar(ctx)
}

// Criar cadastra um usuário pela matrícula e anexa o resultado.
func (s *UsuarioStore) Criar(ctx context.Context, matricula int) (entity.Usuario, error) {
	s.begin()
	defer s.end()

	created, err := s.api.Create(ctx, matricula)
	if err != nil {
		s.fail("erro ao cadastrar usuário", err)
		return entity.Usuario{}, err
	}

	u := usuarioFromDTO(*created)
	s.mu.Lock()
	s.usuarios = append(s.usuarios, u)
	s.mu.Unlock()
	return u, nil
}

// Remover envia o delete e, só em caso de sucesso, retira a entrada local.
func (s *UsuarioStore) Remover(ctx context.Context, id string) error {
	s.begin()
	defer s.end()

	if err := s.api.Delete(ctx, id); err != nil {
		s.fail("erro ao remover usuário", err)
		return err
	}

	s.mu.Lock()
	kept := s.usuarios[:0:0]
	for _, u := range s.usuarios {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.usuarios = kept
	s.mu.Unlock()
	return nil
}

// ValidarCracha busca localmente um usuário pelo código do crachá. Código
// vazio nunca valida.
func (s *UsuarioStore) ValidarCracha(codigo string) (entity.Usuario, bool) {
	limpo := strings.TrimSpace(codigo)
	if limpo == "" {
		return entity.Usuario{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.usuarios {
		if u.CodigoCracha == limpo {
			return u, true
		}
	}
	return entity.Usuario{}, false
}

// Usuarios devolve uma cópia da lista em cache.
func (s *UsuarioStore) Usuarios() []entity.Usuario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Usuario, len(s.usuarios))
	copy(out, s.usuarios)
	return out
}

// Loading indica operação de rede em andamento.
func (s *UsuarioStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err devolve a última mensagem de erro registrada (vazia sem erro).
func (s *UsuarioStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Initialized indica se a lista já foi populada nesta sessão.
func (s *UsuarioStore) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

func (s *UsuarioStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *UsuarioStore) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *UsuarioStore) fail(msg string, err error) {
	s.mu.Lock()
	s.err = fmt.Sprintf("%s: %v", msg, err)
	s.mu.Unlock()
	s.log.Error().Err(err).Msg(msg)
}

func usuarioFromDTO(u dto.UserDTO) entity.Usuario {
	return entity.Usuario{
		ID:           u.ID,
		Nome:         u.Name,
		Matricula:    u.Matricula,
		CodigoCracha: u.BadgeCode,
		Cargo:        u.Role,
	}
}
