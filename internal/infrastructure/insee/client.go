// Package insee interroge l'API Sirene de l'INSEE (v3.11) pour identifier une
// entreprise à partir de son SIREN.
package insee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/config"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/logger"
)

// Client client HTTP de l'API Sirene. Un seul appel par recherche, sans
// retry : en cas d'échec l'utilisateur peut simplement re-soumettre.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

// NewClient construit le client à partir de la configuration INSEE.
func NewClient(cfg config.INSEEConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		log:        log,
	}
}

type reponseSirene struct {
	UniteLegale uniteLegale `json:"uniteLegale"`
}

type uniteLegale struct {
	Denomination         string `json:"denominationUniteLegale"`
	DenominationUsuelle1 string `json:"denominationUsuelle1UniteLegale"`
	PrenomUsuel          string `json:"prenomUsuelUniteLegale"`
	Nom                  string `json:"nomUniteLegale"`
}

// nom retourne la dénomination à afficher. Les personnes morales ont une
// dénomination ; pour les entrepreneurs individuels on retombe sur
// "prénom nom".
func (u uniteLegale) nom() string {
	if u.Denomination != "" {
		return u.Denomination
	}
	if u.DenominationUsuelle1 != "" {
		return u.DenominationUsuelle1
	}
	return strings.TrimSpace(u.PrenomUsuel + " " + u.Nom)
}

// RechercherUniteLegale retourne la dénomination de l'unité légale du SIREN.
// Les échecs sont traduits en erreurs métier affichables.
func (c *Client) RechercherUniteLegale(ctx context.Context, siren string) (string, error) {
	url := fmt.Sprintf("%s/siren/%s", c.baseURL, siren)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Error().Err(err).Str("siren", siren).Msg("API INSEE: construction de la requête impossible")
		return "", domain.ErrTechnique
	}
	req.Header.Set("X-INSEE-Api-Key-Integration", c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.log.Info().Str("siren", siren).Msg("API INSEE: interrogation du registre")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			c.log.Error().Str("siren", siren).Msg("API INSEE: délai dépassé")
			return "", domain.ErrDelaiDepasse
		}
		c.log.Error().Err(err).Str("siren", siren).Msg("API INSEE: échec de l'appel")
		return "", domain.ErrTechnique
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var donnees reponseSirene
		if err := json.NewDecoder(resp.Body).Decode(&donnees); err != nil {
			c.log.Error().Err(err).Str("siren", siren).Msg("API INSEE: réponse illisible")
			return "", domain.ErrTechnique
		}
		nom := donnees.UniteLegale.nom()
		c.log.Info().Str("siren", siren).Str("nom", nom).Msg("API INSEE: unité légale trouvée")
		return nom, nil

	case resp.StatusCode == http.StatusNotFound:
		c.log.Warn().Str("siren", siren).Msg("API INSEE: SIREN inconnu du registre")
		return "", domain.ErrEntrepriseNonTrouvee

	default:
		c.log.Error().Int("status", resp.StatusCode).Str("siren", siren).Msg("API INSEE: statut inattendu")
		return "", domain.ErrConnexionINSEE
	}
}
