package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/auth"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/dto"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/intake"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/sirene"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/usecase"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/repository"
	"github.com/cabinet-mercier/questionnaires-fe/internal/infrastructure/cache"
	ihttp "github.com/cabinet-mercier/questionnaires-fe/internal/interfaces/http"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/config"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/jwt"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/logger"
)

const secretRoutes = "secret-de-test-suffisamment-long"

type clientSireneFige struct{ nom string }

func (c *clientSireneFige) RechercherUniteLegale(_ context.Context, _ string) (string, error) {
	return c.nom, nil
}

type entreprisesMemoire struct {
	parSiren map[string]*entity.Entreprise
}

func (r *entreprisesMemoire) GetBySiren(_ context.Context, siren string) (*entity.Entreprise, error) {
	return r.parSiren[siren], nil
}

func (r *entreprisesMemoire) FindOrCreate(_ context.Context, siren, nom string) (*entity.Entreprise, error) {
	if e, ok := r.parSiren[siren]; ok {
		return e, nil
	}
	e := &entity.Entreprise{Siren: siren, NomEntreprise: nom, DateCreation: time.Now(), DateModification: time.Now()}
	r.parSiren[siren] = e
	return e, nil
}

func (r *entreprisesMemoire) Archive(_ context.Context, siren string) error {
	if e, ok := r.parSiren[siren]; ok {
		e.IsArchived = true
	}
	return nil
}

type qClientsMemoire struct {
	parSiren map[string]*entity.QuestionnaireClient
}

func (r *qClientsMemoire) GetBySiren(_ context.Context, siren string) (*entity.QuestionnaireClient, error) {
	return r.parSiren[siren], nil
}

func (r *qClientsMemoire) Upsert(_ context.Context, q *entity.QuestionnaireClient) error {
	r.parSiren[q.EntrepriseSiren] = q
	return nil
}

type qCollabsMemoire struct {
	parSiren map[string]*entity.QuestionnaireCollaborateur
}

func (r *qCollabsMemoire) GetBySiren(_ context.Context, siren string) (*entity.QuestionnaireCollaborateur, error) {
	return r.parSiren[siren], nil
}

func (r *qCollabsMemoire) Upsert(_ context.Context, q *entity.QuestionnaireCollaborateur) error {
	r.parSiren[q.EntrepriseSiren] = q
	return nil
}

type dossiersFiges struct {
	dossiers []entity.DossierEntreprise
}

func (r *dossiersFiges) Stats(_ context.Context) (*repository.StatistiquesTableau, error) {
	return &repository.StatistiquesTableau{}, nil
}

func (r *dossiersFiges) Rechercher(_ context.Context, _ repository.CriteresDossiers) ([]entity.DossierEntreprise, error) {
	return r.dossiers, nil
}

func (r *dossiersFiges) GetDossier(_ context.Context, siren string) (*entity.DossierEntreprise, error) {
	for i := range r.dossiers {
		if r.dossiers[i].Entreprise.Siren == siren {
			return &r.dossiers[i], nil
		}
	}
	return nil, nil
}

type utilisateursVides struct{}

func (utilisateursVides) FindByEmail(_ context.Context, _ string) (*entity.Utilisateur, error) {
	return nil, nil
}
func (utilisateursVides) FindByID(_ context.Context, _ string) (*entity.Utilisateur, error) {
	return nil, nil
}
func (utilisateursVides) Create(_ context.Context, _ *entity.Utilisateur) error { return nil }

type bancHTTP struct {
	app      *fiber.App
	qClients *qClientsMemoire
}

func nouveauBancHTTP(t *testing.T) *bancHTTP {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	recherche := sirene.NewRecherche(&clientSireneFige{nom: "BOULANGERIE DUPONT"}, cache.NewSirenMemoire(), time.Hour, log)

	entreprises := &entreprisesMemoire{parSiren: map[string]*entity.Entreprise{}}
	qClients := &qClientsMemoire{parSiren: map[string]*entity.QuestionnaireClient{}}
	qCollabs := &qCollabsMemoire{parSiren: map[string]*entity.QuestionnaireCollaborateur{}}
	workflow := intake.NewWorkflow(recherche, cache.NewSessionsMemoire(), entreprises, qClients, qCollabs, 30*time.Minute, log)

	dossiers := &dossiersFiges{dossiers: []entity.DossierEntreprise{
		{Entreprise: entity.Entreprise{Siren: "123456789", NomEntreprise: "BOULANGERIE DUPONT"}},
	}}

	authUsecase := auth.NewUsecase(utilisateursVides{}, config.JWTConfig{Secret: secretRoutes, Expiration: 60, Issuer: "test"}, log)

	app := fiber.New()
	ihttp.SetupRoutes(app, ihttp.Handlers{
		Auth:          ihttp.NewAuthHandler(authUsecase),
		Client:        ihttp.NewClientHandler(recherche, workflow),
		Collaborateur: ihttp.NewCollaborateurHandler(workflow),
		Dashboard:     ihttp.NewDashboardHandler(usecase.NewTableauDeBord(dossiers, log), usecase.NewDossiers(dossiers, entreprises, log)),
		Export:        ihttp.NewExportHandler(usecase.NewExport(dossiers)),
	}, secretRoutes)

	return &bancHTTP{app: app, qClients: qClients}
}

func postForm(t *testing.T, app *fiber.App, cible string, valeurs url.Values) ([]byte, int) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, cible, strings.NewReader(valeurs.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	corps, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return corps, resp.StatusCode
}

func TestParcoursClient_Complet(t *testing.T) {
	b := nouveauBancHTTP(t)

	// Étape 1 : identification par SIREN
	corps, statut := postForm(t, b.app, "/api/client/identification", url.Values{"siren": {"123456789"}})
	require.Equal(t, fiber.StatusOK, statut)

	var ident dto.IdentificationResponse
	require.NoError(t, json.Unmarshal(corps, &ident))
	assert.Equal(t, "BOULANGERIE DUPONT", ident.NomEntreprise)
	require.NotEmpty(t, ident.Token)

	// Étape 2 : soumission du questionnaire avec le jeton
	corps, statut = postForm(t, b.app, "/api/client/questionnaire", url.Values{
		"token":                   {ident.Token},
		"logiciel_facturation":    {"on"},
		"gestion_future":          {"deleguer"},
		"accompagnement_souhaite": {"formation", "support"},
	})
	require.Equal(t, fiber.StatusOK, statut)

	var soumission dto.SoumissionResponse
	require.NoError(t, json.Unmarshal(corps, &soumission))
	assert.Equal(t, "123456789", soumission.Siren)

	q := b.qClients.parSiren["123456789"]
	require.NotNil(t, q)
	assert.True(t, q.LogicielFacturation)
	assert.Equal(t, []string{"formation", "support"}, q.AccompagnementSouhaite)
}

func TestParcoursClient_SirenInvalide(t *testing.T) {
	b := nouveauBancHTTP(t)

	corps, statut := postForm(t, b.app, "/api/client/identification", url.Values{"siren": {"12345"}})
	assert.Equal(t, fiber.StatusBadRequest, statut)

	var erreur dto.ErrorResponse
	require.NoError(t, json.Unmarshal(corps, &erreur))
	assert.Equal(t, "le SIREN doit contenir exactement 9 chiffres", erreur.Error)
}

func TestParcoursClient_SoumissionSansJeton(t *testing.T) {
	b := nouveauBancHTTP(t)

	_, statut := postForm(t, b.app, "/api/client/questionnaire", url.Values{"token": {"perime"}})
	assert.Equal(t, fiber.StatusUnauthorized, statut)
}

func TestValidateSiren_ToujoursEn200(t *testing.T) {
	b := nouveauBancHTTP(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/client/validate-siren?siren=123456789", nil)
	resp, err := b.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	corps, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var validation dto.ValidationSirenResponse
	require.NoError(t, json.Unmarshal(corps, &validation))
	assert.True(t, validation.Success)
	assert.Equal(t, "BOULANGERIE DUPONT", validation.Nom)

	// Même un format invalide répond 200, l'erreur est dans le corps
	req = httptest.NewRequest(fiber.MethodGet, "/api/client/validate-siren?siren=abc", nil)
	resp, err = b.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	corps, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(corps, &validation))
	assert.False(t, validation.Success)
	assert.NotEmpty(t, validation.Error)
}

func TestRoutesCollaborateur_Protegees(t *testing.T) {
	b := nouveauBancHTTP(t)

	for _, cible := range []string{"/api/dashboard", "/api/export/csv", "/api/entreprises/123456789"} {
		req := httptest.NewRequest(fiber.MethodGet, cible, nil)
		resp, err := b.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, cible)
	}
}

func TestExportCSV_FormatExcel(t *testing.T) {
	b := nouveauBancHTTP(t)

	token, err := jwt.Generate(secretRoutes, "id", "sophie.durand@cabinet-mercier.fr", "Sophie Durand", "test", 60)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/api/export/csv", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := b.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "export_questionnaires.csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")

	corps, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// BOM UTF-8 en tête pour Excel, puis l'en-tête séparée par des points-virgules
	require.True(t, len(corps) > 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, corps[:3])
	premiereLigne := strings.SplitN(string(corps[3:]), "\n", 2)[0]
	assert.True(t, strings.HasPrefix(premiereLigne, "SIREN;Nom Entreprise;"))
}
