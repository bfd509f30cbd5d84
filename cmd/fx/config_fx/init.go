package config_fx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"travigo/internal/config"
	"travigo/pkg/observability"
	"travigo/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideRegistry,
	provideJWTManager,
)

func provideLogger(cfg config.Config) zerolog.Logger {
	logger := observability.NewLogger(cfg.AppEnv)
	log.Logger = logger
	return logger
}

func provideRegistry() *prometheus.Registry {
	return observability.InitRegistry()
}

func provideJWTManager(cfg config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWT)
}
