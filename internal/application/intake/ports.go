package intake

import (
	"context"
	"time"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/sirene"
)

// TypeQuestionnaire distingue les deux parcours de collecte.
type TypeQuestionnaire string

const (
	TypeClient        TypeQuestionnaire = "client"
	TypeCollaborateur TypeQuestionnaire = "collaborateur"
)

// Session état transitoire entre l'identification de l'entreprise et la
// soumission du questionnaire. Le jeton qui la référence est opaque.
type Session struct {
	Siren         string            `json:"siren"`
	NomEntreprise string            `json:"nom_entreprise"`
	Type          TypeQuestionnaire `json:"type"`
}

// SessionStore conserve les sessions de saisie avec expiration automatique.
// Find retourne (nil, nil) pour un jeton inconnu ou expiré.
type SessionStore interface {
	Save(ctx context.Context, token string, sess Session, ttl time.Duration) error
	Find(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// RechercheSiren vérifie un SIREN saisi et retourne l'identité de
// l'entreprise (implémenté par sirene.Recherche).
type RechercheSiren interface {
	Rechercher(ctx context.Context, saisie string) (*sirene.Resultat, error)
}
