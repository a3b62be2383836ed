package app

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/linkhub/internal/config"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/redis"
	"github.com/MrSnakeDoc/linkhub/internal/store"
	redisstore "github.com/MrSnakeDoc/linkhub/internal/store/redis"
	"github.com/MrSnakeDoc/linkhub/internal/store/sqlite"
)

// OpenStore connects the backend selected by cfg.StoreDriver. Redis is
// retried until RedisConnectTimeout; SQLite creates the file if needed.
func OpenStore(ctx context.Context, cfg *config.Config, log logger.Logger) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverRedis:
		log.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(ctx, redis.OptionsFromConfig(cfg), log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return redisstore.NewStore(client), nil

	case config.DriverSQLite:
		log.Info("opening sqlite store", logger.String("path", cfg.SQLitePath))
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
