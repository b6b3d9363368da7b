package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-client/internal/application/dto"
	"github.com/jhoicas/estoque-client/internal/interfaces/stub"
	"github.com/jhoicas/estoque-client/pkg/config"
	"github.com/jhoicas/estoque-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	srv := stub.New()
	seed(srv)

	app := srv.App()

	go func() {
		log.Info().Str("addr", cfg.Stub.Addr()).Msg("stub do serviço de estoque escutando")
		if err := app.Listen(cfg.Stub.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor stub finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando stub...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do stub")
	}
}

// seed carrega fixtures de demonstração.
func seed(srv *stub.Server) {
	valorMouse := decimal.NewFromFloat(49.90)
	valorCabo := decimal.NewFromFloat(12.50)
	codigoMouse := "100234"
	codigoCabo := "CB-0815"
	local := "gaveta_01"

	srv.SeedProdutos(
		dto.ProductDTO{
			ID:              "7b0d6f2e-0000-4000-8000-000000000001",
			Name:            "Mouse óptico USB",
			Category:        "perifericos",
			Codigo:          &codigoMouse,
			MinimalQuantity: 2,
			Quantity:        10,
			Value:           &valorMouse,
			LocalStorage:    &local,
			CreatedBy:       18783,
		},
		dto.ProductDTO{
			ID:              "7b0d6f2e-0000-4000-8000-000000000002",
			Name:            "Cabo HDMI 1,5m",
			Category:        "cabos",
			Codigo:          &codigoCabo,
			MinimalQuantity: 5,
			Quantity:        3,
			Value:           &valorCabo,
			CreatedBy:       18783,
		},
	)

	srv.SeedUsuarios(
		dto.UserDTO{ID: "u-1", Name: "Hellen Verena", Matricula: 123456, BadgeCode: "123456", Role: "Admin"},
		dto.UserDTO{ID: "u-2", Name: "Operador Estoque", Matricula: 999888, BadgeCode: "999888", Role: "Operador"},
	)
}
