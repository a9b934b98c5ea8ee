package sirene

import (
	"context"
	"time"
)

// Resultat identité d'une entreprise retournée par le registre Sirene.
type Resultat struct {
	Siren string `json:"siren"`
	Nom   string `json:"nom"`
}

// ClientSirene interroge le registre des unités légales. RechercherUniteLegale
// retourne la dénomination de l'entreprise ou une erreur métier
// (domain.ErrEntrepriseNonTrouvee, ErrConnexionINSEE, ErrDelaiDepasse,
// ErrTechnique).
type ClientSirene interface {
	RechercherUniteLegale(ctx context.Context, siren string) (string, error)
}

// CacheSiren mémorise les résultats de recherche réussis. Get retourne
// (nil, nil) en cas d'absence ou d'expiration ; seuls les succès sont mis en
// cache, jamais les échecs.
type CacheSiren interface {
	Get(ctx context.Context, siren string) (*Resultat, error)
	Set(ctx context.Context, siren string, res *Resultat, ttl time.Duration) error
}
