package store_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-client/internal/application/dto"
	"github.com/jhoicas/estoque-client/internal/application/store"
	"github.com/jhoicas/estoque-client/internal/domain/entity"
	"github.com/jhoicas/estoque-client/internal/infrastructure/api"
	"github.com/jhoicas/estoque-client/internal/interfaces/stub"
)

// ambiente sobe o stub Fiber num listener efêmero e devolve os stores ligados
// ao transporte real.
type ambiente struct {
	materiais     *store.MaterialStore
	movimentacoes *store.MovimentacaoStore
	dashboard     *store.DashboardStore
	usuarios      *store.UsuarioStore
	idMouse       string
}

func novoAmbiente(t *testing.T) *ambiente {
	t.Helper()

	valorMouse := decimal.NewFromFloat(49.90)
	codigoMouse := "100234"
	local := "gaveta_01"

	srv := stub.New()
	srv.SeedProdutos(dto.ProductDTO{
		ID:              "7b0d6f2e-0000-4000-8000-000000000001",
		Name:            "Mouse óptico USB",
		Category:        "perifericos",
		Codigo:          &codigoMouse,
		MinimalQuantity: 2,
		Quantity:        10,
		Value:           &valorMouse,
		LocalStorage:    &local,
		CreatedBy:       18783,
	})
	srv.SeedUsuarios(dto.UserDTO{
		ID: "u-1", Name: "Hellen Verena", Matricula: 123456, BadgeCode: "123456", Role: "Admin",
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	app := srv.App()
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	client := api.New("http://"+ln.Addr().String(), 5*time.Second, testLogger())
	log := testLogger()

	materiais := store.NewMaterialStore(api.NewProductsService(client), log)
	return &ambiente{
		materiais:     materiais,
		movimentacoes: store.NewMovimentacaoStore(api.NewMovimentationsService(client), materiais, log),
		dashboard:     store.NewDashboardStore(api.NewDashboardService(client), log),
		usuarios:      store.NewUsuarioStore(api.NewUsersService(client), log),
		idMouse:       "7b0d6f2e-0000-4000-8000-000000000001",
	}
}

// Fluxo completo de saída: registrar a movimentação, conferir o
// enriquecimento e observar a quantidade nova na próxima busca de materiais.
func TestIntegracao_SaidaDeMaterial(t *testing.T) {
	env := novoAmbiente(t)
	ctx := context.Background()

	mov, err := env.movimentacoes.Criar(ctx, store.CriarMovimentacaoInput{
		Tipo:          entity.TipoSaida,
		MaterialID:    env.idMouse,
		Quantidade:    3,
		ResponsavelID: 18783,
		Observacoes:   "retirada para suporte",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TipoSaida, mov.Tipo)
	require.NotNil(t, mov.QuantidadeAnterior)
	require.NotNil(t, mov.QuantidadeNova)
	assert.Equal(t, 10, *mov.QuantidadeAnterior)
	assert.Equal(t, 7, *mov.QuantidadeNova, "o servidor é a autoridade sobre a quantidade resultante")

	require.NoError(t, env.materiais.EnsureLoaded(ctx))
	m, ok := env.materiais.GetByID(env.idMouse)
	require.True(t, ok)
	assert.Equal(t, 7, m.Quantidade, "a busca pós-movimentação reflete a quantidade do servidor")

	// enriquecimento na leitura da coleção completa
	require.NoError(t, env.movimentacoes.Buscar(ctx))
	movs := env.movimentacoes.Movimentacoes()
	require.Len(t, movs, 1)
	assert.Equal(t, "Mouse óptico USB", movs[0].MaterialNome)
	assert.Equal(t, "perifericos", movs[0].Categoria)
	require.NotNil(t, movs[0].Valor)
	assert.True(t, movs[0].Valor.Equal(decimal.NewFromFloat(149.70)))
}

// Saída maior que o estoque: erro de validação tipado, nada anexado.
func TestIntegracao_SaidaInsuficienteEhErroDeValidacao(t *testing.T) {
	env := novoAmbiente(t)

	_, err := env.movimentacoes.Criar(context.Background(), store.CriarMovimentacaoInput{
		Tipo:          entity.TipoSaida,
		MaterialID:    env.idMouse,
		Quantidade:    999,
		ResponsavelID: 18783,
	})
	require.Error(t, err)
	assert.True(t, api.IsValidation(err), "estoque insuficiente responde 400")

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "estoque insuficiente")
	assert.Empty(t, env.movimentacoes.Movimentacoes())
}

func TestIntegracao_AtualizacaoParcialViaPatch(t *testing.T) {
	env := novoAmbiente(t)
	ctx := context.Background()
	require.NoError(t, env.materiais.EnsureLoaded(ctx))

	nome := "Mouse óptico USB v2"
	m, err := env.materiais.Atualizar(ctx, env.idMouse, store.AtualizarMaterialInput{Nome: &nome}, 18783)
	require.NoError(t, err)

	assert.Equal(t, "Mouse óptico USB v2", m.Nome)
	assert.Equal(t, "perifericos", m.Categoria, "campo não informado permanece intacto no servidor")
	assert.Equal(t, 10, m.Quantidade)
	require.NotNil(t, m.Valor)
	assert.True(t, m.Valor.Equal(decimal.NewFromFloat(49.90)))
}

func TestIntegracao_MaterialInexistenteEh404(t *testing.T) {
	env := novoAmbiente(t)

	err := env.materiais.Remover(context.Background(), "id-que-nao-existe")
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
}

// Dashboard agrega os dois endpoints e traduz os tipos para o vocabulário da
// UI.
func TestIntegracao_DashboardAgregado(t *testing.T) {
	env := novoAmbiente(t)
	ctx := context.Background()

	_, err := env.movimentacoes.Criar(ctx, store.CriarMovimentacaoInput{
		Tipo: entity.TipoEntrada, MaterialID: env.idMouse, Quantidade: 5, ResponsavelID: 18783,
	})
	require.NoError(t, err)
	_, err = env.movimentacoes.Criar(ctx, store.CriarMovimentacaoInput{
		Tipo: entity.TipoSaida, MaterialID: env.idMouse, Quantidade: 2, ResponsavelID: 18783,
	})
	require.NoError(t, err)

	painel, err := env.dashboard.BuscarDados(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, painel.Produtos.TotalMateriais)
	assert.Equal(t, 13, painel.Produtos.QuantidadeTotal, "10 + 5 - 2")
	assert.Equal(t, 2, painel.Movimentacoes.Total)
	assert.Equal(t, 1, painel.Movimentacoes.PorTipo[entity.TipoEntrada])
	assert.Equal(t, 1, painel.Movimentacoes.PorTipo[entity.TipoSaida])
	require.NotEmpty(t, painel.Movimentacoes.Recentes)
	assert.Equal(t, "Mouse óptico USB", painel.Movimentacoes.Recentes[0].MaterialNome,
		"recentes usam a denormalização enviada pelo servidor")
}

func TestIntegracao_FluxoDeUsuarios(t *testing.T) {
	env := novoAmbiente(t)
	ctx := context.Background()

	require.NoError(t, env.usuarios.EnsureLoaded(ctx))
	u, ok := env.usuarios.ValidarCracha("123456")
	require.True(t, ok)
	assert.Equal(t, "Hellen Verena", u.Nome)

	criado, err := env.usuarios.Criar(ctx, 555000)
	require.NoError(t, err)
	assert.Equal(t, 555000, criado.Matricula)
	assert.Len(t, env.usuarios.Usuarios(), 2)

	require.NoError(t, env.usuarios.Remover(ctx, criado.ID))
	assert.Len(t, env.usuarios.Usuarios(), 1)
}

// Transferência muda o local sem alterar a quantidade.
func TestIntegracao_TransferenciaNaoAlteraQuantidade(t *testing.T) {
	env := novoAmbiente(t)
	ctx := context.Background()

	mov, err := env.movimentacoes.Criar(ctx, store.CriarMovimentacaoInput{
		Tipo:          entity.TipoTransferencia,
		MaterialID:    env.idMouse,
		Quantidade:    10,
		ResponsavelID: 18783,
		NovoLocal:     "prateleira_nivel_02",
	})
	require.NoError(t, err)

	require.NotNil(t, mov.QuantidadeNova)
	assert.Equal(t, 10, *mov.QuantidadeNova)
	assert.Equal(t, "prateleira_nivel_02", mov.NovoLocal)

	require.NoError(t, env.materiais.Buscar(ctx, nil))
	m, ok := env.materiais.GetByID(env.idMouse)
	require.True(t, ok)
	assert.Equal(t, 10, m.Quantidade)
	assert.Equal(t, "prateleira_nivel_02", m.Local)
}
