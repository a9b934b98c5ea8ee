// Package cache fournit les implémentations du cache de recherche SIREN et du
// magasin de sessions de saisie : en mémoire pour le développement et les
// tests, Redis pour le déploiement multi-instances.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/sirene"
)

type entreeSiren struct {
	resultat sirene.Resultat
	expire   time.Time
}

// SirenMemoire cache en mémoire des recherches Sirene réussies. L'expiration
// est vérifiée à la lecture ; une entrée expirée équivaut à une absence.
type SirenMemoire struct {
	mu      sync.RWMutex
	entrees map[string]entreeSiren
}

// NewSirenMemoire construit un cache vide.
func NewSirenMemoire() *SirenMemoire {
	return &SirenMemoire{entrees: map[string]entreeSiren{}}
}

// Get retourne le résultat mémorisé, ou (nil, nil) si absent ou expiré.
func (c *SirenMemoire) Get(_ context.Context, siren string) (*sirene.Resultat, error) {
	c.mu.RLock()
	e, ok := c.entrees[siren]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expire) {
		return nil, nil
	}
	res := e.resultat
	return &res, nil
}

// Set mémorise un résultat pour la durée donnée.
func (c *SirenMemoire) Set(_ context.Context, siren string, res *sirene.Resultat, ttl time.Duration) error {
	c.mu.Lock()
	c.entrees[siren] = entreeSiren{resultat: *res, expire: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}
