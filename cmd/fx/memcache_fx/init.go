package memcache_fx

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"travigo/internal/config"
	"travigo/internal/infra"
	mem "travigo/pkg/memcache"
)

var Module = fx.Provide(provideRevokedTokenStore)

// provideRevokedTokenStore uses redis when REDIS_ADDR is set so logouts survive restarts
// and are shared between replicas; otherwise revocations live in process memory.
func provideRevokedTokenStore(lc fx.Lifecycle, cfg config.Config, logger zerolog.Logger) (mem.RevokedTokenStore, error) {
	if cfg.Redis.Addr == "" {
		logger.Info().Msg("REDIS_ADDR not set, using in-memory revoked token store")
		return mem.NewRevokedTokens(), nil
	}

	client, err := infra.InitRedis(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return mem.NewRedisRevokedTokens(client), nil
}
