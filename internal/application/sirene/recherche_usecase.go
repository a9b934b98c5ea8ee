package sirene

import (
	"context"
	"strings"
	"time"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/logger"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/siren"
)

// Recherche orchestre la vérification d'un SIREN : validation locale du
// format, lecture du cache, puis interrogation du registre Sirene. Un
// résultat obtenu du registre est conservé en cache pour économiser le quota
// d'appels de l'API.
type Recherche struct {
	client ClientSirene
	cache  CacheSiren
	ttl    time.Duration
	log    *logger.Logger
}

// NewRecherche construit le cas d'usage de recherche SIREN.
func NewRecherche(client ClientSirene, cache CacheSiren, ttl time.Duration, log *logger.Logger) *Recherche {
	return &Recherche{client: client, cache: cache, ttl: ttl, log: log}
}

// Rechercher retourne l'identité de l'entreprise pour un SIREN saisi.
// Une panne du cache n'est jamais bloquante : on retombe sur l'appel direct.
func (r *Recherche) Rechercher(ctx context.Context, saisie string) (*Resultat, error) {
	s := strings.TrimSpace(saisie)
	if s == "" {
		return nil, domain.ErrSirenRequis
	}
	if !siren.EstValide(s) {
		return nil, domain.ErrSirenInvalide
	}

	res, err := r.cache.Get(ctx, s)
	if err != nil {
		r.log.Warn().Err(err).Str("siren", s).Msg("lecture du cache siren impossible")
	} else if res != nil {
		r.log.Debug().Str("siren", s).Msg("cache siren: hit")
		return res, nil
	}

	nom, err := r.client.RechercherUniteLegale(ctx, s)
	if err != nil {
		return nil, err
	}

	res = &Resultat{Siren: s, Nom: nom}
	if err := r.cache.Set(ctx, s, res, r.ttl); err != nil {
		r.log.Warn().Err(err).Str("siren", s).Msg("écriture du cache siren impossible")
	}
	r.log.Info().Str("siren", s).Str("nom", nom).Msg("entreprise identifiée via Sirene")
	return res, nil
}
