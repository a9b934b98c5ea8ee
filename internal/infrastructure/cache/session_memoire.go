package cache

import (
	"context"
	"sync"
	"time"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/intake"
)

type entreeSession struct {
	session intake.Session
	expire  time.Time
}

// SessionsMemoire magasin en mémoire des sessions de saisie. Les jetons
// expirés sont purgés paresseusement à la lecture.
type SessionsMemoire struct {
	mu      sync.Mutex
	entrees map[string]entreeSession
}

// NewSessionsMemoire construit un magasin vide.
func NewSessionsMemoire() *SessionsMemoire {
	return &SessionsMemoire{entrees: map[string]entreeSession{}}
}

// Save enregistre la session sous le jeton donné.
func (s *SessionsMemoire) Save(_ context.Context, token string, sess intake.Session, ttl time.Duration) error {
	s.mu.Lock()
	s.entrees[token] = entreeSession{session: sess, expire: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

// Find retourne la session du jeton, ou (nil, nil) si inconnue ou expirée.
func (s *SessionsMemoire) Find(_ context.Context, token string) (*intake.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entrees[token]
	if !ok {
		return nil, nil
	}
	if time.Now().After(e.expire) {
		delete(s.entrees, token)
		return nil, nil
	}
	sess := e.session
	return &sess, nil
}

// Delete consomme le jeton. Supprimer un jeton inconnu n'est pas une erreur.
func (s *SessionsMemoire) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.entrees, token)
	s.mu.Unlock()
	return nil
}
