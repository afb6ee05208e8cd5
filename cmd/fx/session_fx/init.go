package session_fx

import (
	"context"

	"bridges/internal/config"
	"bridges/internal/infra"
	"bridges/pkg/session"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(provideSessionStore)

func provideSessionStore(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) session.Store {
	client := infra.OpenRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
	if client == nil {
		log.Info("using in-memory session store")
		return session.NewMemoryStore()
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return session.NewRedisStore(client)
}
