package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-statblock/internal/config"
	"github.com/KirkDiggler/rpg-statblock/internal/redis"
	creaturerepo "github.com/KirkDiggler/rpg-statblock/internal/repositories/creature"
)

// openRepository connects the configured store. The returned func releases it.
func openRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (creaturerepo.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		// a comma separated address list selects cluster mode
		client, err := redis.Connect(strings.Split(cfg.RedisAddr, ","), nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("using redis creature store", "addr", cfg.RedisAddr)
		return creaturerepo.NewRedisRepository(client), func() { _ = client.Close() }, nil

	case config.StoreSQLite:
		repo, err := creaturerepo.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		logger.Info("using sqlite creature store", "path", cfg.SQLitePath)
		return repo, func() { _ = repo.Close() }, nil
	}

	return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
}
