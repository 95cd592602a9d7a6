package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/omnipos-terminal/internal/application/auth"
	"github.com/jhoicas/omnipos-terminal/internal/application/cart"
	"github.com/jhoicas/omnipos-terminal/internal/application/checkout"
	"github.com/jhoicas/omnipos-terminal/internal/application/session"
	"github.com/jhoicas/omnipos-terminal/internal/infrastructure/api"
	infrapdf "github.com/jhoicas/omnipos-terminal/internal/infrastructure/pdf"
	"github.com/jhoicas/omnipos-terminal/internal/infrastructure/storage"
	"github.com/jhoicas/omnipos-terminal/internal/interfaces/cli"
	"github.com/jhoicas/omnipos-terminal/pkg/config"
	"github.com/jhoicas/omnipos-terminal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando terminal")

	store, err := storage.New(cfg.State.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.State.Dir).Msg("directorio de estado")
	}

	client := api.New(
		api.Config{BaseURL: cfg.API.BaseURL, Timeout: cfg.API.Timeout},
		store, log,
		api.WithAuthFailureHandler(func() {
			fmt.Fprintln(os.Stderr, "Sesión expirada. Ejecute 'omnipos login' para continuar.")
		}),
	)

	sessionStore := session.New(store, log)
	cartStore := cart.New(store, log)
	authUC := auth.NewUseCase(client, store, sessionStore, log)
	checkoutUC := checkout.NewUseCase(client, cartStore, sessionStore, log)

	app := &cli.App{
		Client:   client,
		Session:  sessionStore,
		Cart:     cartStore,
		Auth:     authUC,
		Checkout: checkoutUC,
		Receipts: infrapdf.NewMarotoReceiptGenerator(),
		Tokens:   store,
		Log:      log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(app).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
