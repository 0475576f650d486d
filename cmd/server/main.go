package main

import (
	"errors"
	"net/http"

	"github.com/daniel-hemmerich-dev/vending-machine/internal/api"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/infrastructure/db/memory"
	"github.com/daniel-hemmerich-dev/vending-machine/internal/pkg/config"
	"github.com/daniel-hemmerich-dev/vending-machine/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_ACCESS_TOKEN_SECRET must be set")
	}

	users := memory.NewUserRepository()
	products := memory.NewProductRepository()

	e := api.NewRouter(users, products, api.Config{
		JWTSecret:  cfg.JWTSecret,
		CookieName: cfg.CookieName,
		TokenTTL:   cfg.TokenTTL,
	}, log)

	log.Info().Str("port", cfg.Port).Msg("vending machine listening")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
