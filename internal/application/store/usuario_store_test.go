package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-client/internal/application/dto"
	"github.com/jhoicas/estoque-client/internal/application/store"
)

func usuarioStoreCarregado(t *testing.T) (*store.UsuarioStore, *fakeUserAPI) {
	t.Helper()
	api := &fakeUserAPI{list: []dto.UserDTO{
		{ID: "u-1", Name: "Hellen Verena", Matricula: 123456, BadgeCode: "123456", Role: "Admin"},
		{ID: "u-2", Name: "Operador Estoque", Matricula: 999888, BadgeCode: "999888", Role: "Operador"},
	}}
	s := store.NewUsuarioStore(api, testLogger())
	require.NoError(t, s.Buscar(context.Background()))
	return s, api
}

func TestUsuarioStore_BuscarMapeia(t *testing.T) {
	s, _ := usuarioStoreCarregado(t)

	usuarios := s.Usuarios()
	require.Len(t, usuarios, 2)
	assert.Equal(t, "Hellen Verena", usuarios[0].Nome)
	assert.Equal(t, 123456, usuarios[0].Matricula)
	assert.Equal(t, "Admin", usuarios[0].Cargo)
	assert.True(t, s.Initialized())
}

func TestUsuarioStore_EnsureLoadedCarregaUmaVez(t *testing.T) {
	s, api := usuarioStoreCarregado(t)

	require.NoError(t, s.EnsureLoaded(context.Background()))
	require.NoError(t, s.EnsureLoaded(context.Background()))

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Equal(t, 1, api.listCalls)
}

func TestUsuarioStore_ValidarCracha(t *testing.T) {
	s, _ := usuarioStoreCarregado(t)

	u, ok := s.ValidarCracha("123456")
	require.True(t, ok)
	assert.Equal(t, "Hellen Verena", u.Nome)

	u, ok = s.ValidarCracha("  999888  ")
	require.True(t, ok, "o código é comparado após trim de espaços")
	assert.Equal(t, "Operador Estoque", u.Nome)

	_, ok = s.ValidarCracha("000000")
	assert.False(t, ok)

	_, ok = s.ValidarCracha("")
	assert.False(t, ok, "código vazio nunca valida")

	_, ok = s.ValidarCracha("   ")
	assert.False(t, ok)
}

func TestUsuarioStore_CriarAnexa(t *testing.T) {
	s, api := usuarioStoreCarregado(t)
	api.mu.Lock()
	api.created = &dto.UserDTO{ID: "u-3", Name: "Novo Operador", Matricula: 555000, BadgeCode: "555000", Role: "Operador"}
	api.mu.Unlock()

	u, err := s.Criar(context.Background(), 555000)
	require.NoError(t, err)
	assert.Equal(t, "u-3", u.ID)
	assert.Len(t, s.Usuarios(), 3)
}

func TestUsuarioStore_RemoverSoRetiraEmSucesso(t *testing.T) {
	s, api := usuarioStoreCarregado(t)

	boom := errors.New("api: usuário não encontrado (HTTP 404)")
	api.mu.Lock()
	api.deleteErr = boom
	api.mu.Unlock()

	require.ErrorIs(t, s.Remover(context.Background(), "u-1"), boom)
	assert.Len(t, s.Usuarios(), 2)

	api.mu.Lock()
	api.deleteErr = nil
	api.mu.Unlock()

	require.NoError(t, s.Remover(context.Background(), "u-1"))
	usuarios := s.Usuarios()
	require.Len(t, usuarios, 1)
	assert.Equal(t, "u-2", usuarios[0].ID)
}

func TestUsuarioStore_FalhaPreservaListaAnterior(t *testing.T) {
	s, api := usuarioStoreCarregado(t)

	api.mu.Lock()
	api.listErr = errors.New("api: indisponível (HTTP 503)")
	api.mu.Unlock()

	require.Error(t, s.Buscar(context.Background()))
	assert.Len(t, s.Usuarios(), 2, "lista anterior intocada em falha")
	assert.Contains(t, s.Err(), "erro ao buscar usuários")
}
