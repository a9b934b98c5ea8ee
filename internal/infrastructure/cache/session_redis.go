package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/intake"
)

const prefixeSession = "intake_session_"

// SessionsRedis magasin Redis des sessions de saisie, pour que le parcours
// survive à un redéploiement et fonctionne derrière un load balancer.
type SessionsRedis struct {
	rdb *goredis.Client
}

// NewSessionsRedis construit le magasin sur un client Redis existant.
func NewSessionsRedis(rdb *goredis.Client) *SessionsRedis {
	return &SessionsRedis{rdb: rdb}
}

// Save enregistre la session avec expiration portée par Redis.
func (s *SessionsRedis) Save(ctx context.Context, token string, sess intake.Session, ttl time.Duration) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, prefixeSession+token, b, ttl).Err()
}

// Find retourne la session du jeton, ou (nil, nil) si la clé est absente.
func (s *SessionsRedis) Find(ctx context.Context, token string) (*intake.Session, error) {
	val, err := s.rdb.Get(ctx, prefixeSession+token).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess intake.Session
	if err := json.Unmarshal(val, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete consomme le jeton.
func (s *SessionsRedis) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, prefixeSession+token).Err()
}
