package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// OpenRedis returns nil when addr is empty.
func OpenRedis(addr, password string, db int, log *zap.Logger) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis ping failed", zap.String("addr", addr), zap.Error(err))
	} else {
		log.Info("redis ready", zap.String("addr", addr), zap.Int("db", db))
	}

	return client
}
