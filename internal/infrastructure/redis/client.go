// Package redis ouvre la connexion au serveur Redis partagé.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/cabinet-mercier/questionnaires-fe/pkg/config"
)

// NewClient crée un client Redis et vérifie la connexion par un ping.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connexion redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}
