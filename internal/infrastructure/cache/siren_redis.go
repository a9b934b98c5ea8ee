package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/sirene"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/siren"
)

// SirenRedis cache Redis des recherches Sirene, partagé entre instances.
// Les valeurs sont sérialisées en JSON sous la clé insee_siren_<siren>.
type SirenRedis struct {
	rdb *goredis.Client
}

// NewSirenRedis construit le cache sur un client Redis existant.
func NewSirenRedis(rdb *goredis.Client) *SirenRedis {
	return &SirenRedis{rdb: rdb}
}

// Get retourne le résultat mémorisé, ou (nil, nil) si la clé est absente
// (Redis purge lui-même les clés expirées).
func (c *SirenRedis) Get(ctx context.Context, s string) (*sirene.Resultat, error) {
	val, err := c.rdb.Get(ctx, siren.CleCache(s)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var res sirene.Resultat
	if err := json.Unmarshal(val, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Set mémorise un résultat avec expiration portée par Redis.
func (c *SirenRedis) Set(ctx context.Context, s string, res *sirene.Resultat, ttl time.Duration) error {
	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, siren.CleCache(s), b, ttl).Err()
}
