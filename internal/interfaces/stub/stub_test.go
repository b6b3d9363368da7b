package stub_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-client/internal/application/dto"
	"github.com/jhoicas/estoque-client/internal/interfaces/stub"
)

func seedPadrao() *stub.Server {
	valor := decimal.NewFromFloat(49.90)
	srv := stub.New()
	srv.SeedProdutos(
		dto.ProductDTO{ID: "p1", Name: "Mouse", Category: "perifericos", Quantity: 10, MinimalQuantity: 2, Value: &valor},
		dto.ProductDTO{ID: "p2", Name: "Cabo", Category: "cabos", Quantity: 3, MinimalQuantity: 5},
		dto.ProductDTO{ID: "p3", Name: "Switch", Category: "rede", Quantity: 0, MinimalQuantity: 1},
	)
	return srv
}

func TestStub_FiltroStockStatus(t *testing.T) {
	app := seedPadrao().App()

	casos := []struct {
		status string
		ids    []string
	}{
		{dto.StockStatusIn, []string{"p1"}},
		{dto.StockStatusLow, []string{"p2"}},
		{dto.StockStatusOut, []string{"p3"}},
	}

	for _, tc := range casos {
		t.Run(tc.status, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/api/products?stock_status="+tc.status, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var out dto.ProductListDTO
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			ids := make([]string, 0, len(out.Data))
			for _, p := range out.Data {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.ids, ids)
		})
	}
}

func TestStub_PatchExigeHeaderDoAtor(t *testing.T) {
	app := seedPadrao().App()

	req, _ := http.NewRequest(http.MethodPatch, "/api/products/p1", nil)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out.Message, "x-rfid")
}

func TestStub_EstatisticasDeProdutos(t *testing.T) {
	app := seedPadrao().App()

	req, _ := http.NewRequest(http.MethodGet, "/api/products/stats/dashboard", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ProductStatsResponseDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	assert.Equal(t, 3, out.Data.TotalMaterials)
	assert.Equal(t, 13, out.Data.TotalQuantity)
	assert.Equal(t, 1, out.Data.LowStockProducts)
	assert.Equal(t, 1, out.Data.OutOfStockProducts)
	assert.True(t, out.Data.TotalStockValue.Equal(decimal.NewFromFloat(499)),
		"só o mouse tem valor unitário: 49.90 x 10")
}
