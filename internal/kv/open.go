package kv

import (
	"context"
	"fmt"

	"authdemo/internal/config"
	"authdemo/internal/db"
)

// Open builds the Store selected by cfg.StoreBackend.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory, "":
		return NewMemory(), nil
	case config.BackendRedis:
		r := NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()
			return nil, err
		}
		return r, nil
	case config.BackendMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return NewSQL(gormDB), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
