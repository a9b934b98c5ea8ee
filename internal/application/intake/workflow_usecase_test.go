package intake_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/dto"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/intake"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/sirene"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/logger"
)

type fauxRecherche struct {
	resultat *sirene.Resultat
	err      error
}

func (f *fauxRecherche) Rechercher(_ context.Context, _ string) (*sirene.Resultat, error) {
	return f.resultat, f.err
}

type fauxSessions struct {
	sessions map[string]intake.Session
}

func newFauxSessions() *fauxSessions {
	return &fauxSessions{sessions: map[string]intake.Session{}}
}

func (f *fauxSessions) Save(_ context.Context, token string, sess intake.Session, _ time.Duration) error {
	f.sessions[token] = sess
	return nil
}

func (f *fauxSessions) Find(_ context.Context, token string) (*intake.Session, error) {
	sess, ok := f.sessions[token]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (f *fauxSessions) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

type fauxEntreprises struct {
	entreprises map[string]*entity.Entreprise
}

func newFauxEntreprises() *fauxEntreprises {
	return &fauxEntreprises{entreprises: map[string]*entity.Entreprise{}}
}

func (f *fauxEntreprises) GetBySiren(_ context.Context, siren string) (*entity.Entreprise, error) {
	return f.entreprises[siren], nil
}

func (f *fauxEntreprises) FindOrCreate(_ context.Context, siren, nom string) (*entity.Entreprise, error) {
	if e, ok := f.entreprises[siren]; ok {
		return e, nil
	}
	e := &entity.Entreprise{Siren: siren, NomEntreprise: nom, DateCreation: time.Now(), DateModification: time.Now()}
	f.entreprises[siren] = e
	return e, nil
}

func (f *fauxEntreprises) Archive(_ context.Context, siren string) error {
	if e, ok := f.entreprises[siren]; ok {
		e.IsArchived = true
	}
	return nil
}

type fauxQClients struct {
	questionnaires map[string]*entity.QuestionnaireClient
}

func newFauxQClients() *fauxQClients {
	return &fauxQClients{questionnaires: map[string]*entity.QuestionnaireClient{}}
}

func (f *fauxQClients) GetBySiren(_ context.Context, siren string) (*entity.QuestionnaireClient, error) {
	return f.questionnaires[siren], nil
}

func (f *fauxQClients) Upsert(_ context.Context, q *entity.QuestionnaireClient) error {
	f.questionnaires[q.EntrepriseSiren] = q
	return nil
}

type fauxQCollabs struct {
	questionnaires map[string]*entity.QuestionnaireCollaborateur
}

func newFauxQCollabs() *fauxQCollabs {
	return &fauxQCollabs{questionnaires: map[string]*entity.QuestionnaireCollaborateur{}}
}

func (f *fauxQCollabs) GetBySiren(_ context.Context, siren string) (*entity.QuestionnaireCollaborateur, error) {
	return f.questionnaires[siren], nil
}

func (f *fauxQCollabs) Upsert(_ context.Context, q *entity.QuestionnaireCollaborateur) error {
	f.questionnaires[q.EntrepriseSiren] = q
	return nil
}

type banc struct {
	workflow    *intake.Workflow
	recherche   *fauxRecherche
	sessions    *fauxSessions
	entreprises *fauxEntreprises
	qClients    *fauxQClients
	qCollabs    *fauxQCollabs
}

func nouveauBanc() *banc {
	b := &banc{
		recherche:   &fauxRecherche{resultat: &sirene.Resultat{Siren: "123456789", Nom: "BOULANGERIE DUPONT"}},
		sessions:    newFauxSessions(),
		entreprises: newFauxEntreprises(),
		qClients:    newFauxQClients(),
		qCollabs:    newFauxQCollabs(),
	}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	b.workflow = intake.NewWorkflow(b.recherche, b.sessions, b.entreprises, b.qClients, b.qCollabs, 30*time.Minute, log)
	return b
}

func TestIdentifier_OuvreUneSession(t *testing.T) {
	b := nouveauBanc()

	resp, err := b.workflow.Identifier(context.Background(), intake.TypeClient, "123456789")
	require.NoError(t, err)

	assert.Equal(t, "123456789", resp.Siren)
	assert.Equal(t, "BOULANGERIE DUPONT", resp.NomEntreprise)
	assert.False(t, resp.DejaComplete)
	require.NotEmpty(t, resp.Token)

	sess, ok := b.sessions.sessions[resp.Token]
	require.True(t, ok)
	assert.Equal(t, intake.TypeClient, sess.Type)
	assert.Equal(t, "123456789", sess.Siren)
}

func TestIdentifier_ErreurSirenePropagee(t *testing.T) {
	b := nouveauBanc()
	b.recherche.resultat = nil
	b.recherche.err = domain.ErrEntrepriseNonTrouvee

	_, err := b.workflow.Identifier(context.Background(), intake.TypeClient, "123456789")
	assert.ErrorIs(t, err, domain.ErrEntrepriseNonTrouvee)
	assert.Empty(t, b.sessions.sessions)
}

func TestIdentifier_QuestionnaireDejaComplete(t *testing.T) {
	b := nouveauBanc()
	b.entreprises.entreprises["123456789"] = &entity.Entreprise{Siren: "123456789", NomEntreprise: "BOULANGERIE DUPONT"}
	b.qClients.questionnaires["123456789"] = &entity.QuestionnaireClient{EntrepriseSiren: "123456789"}

	resp, err := b.workflow.Identifier(context.Background(), intake.TypeClient, "123456789")
	require.NoError(t, err)

	assert.True(t, resp.DejaComplete)
	assert.Empty(t, resp.Token, "aucune session ne doit être ouverte quand le questionnaire existe déjà")
	assert.Empty(t, b.sessions.sessions)
}

func TestIdentifier_ParcoursIndependants(t *testing.T) {
	// Un questionnaire client existant ne bloque pas le parcours collaborateur.
	b := nouveauBanc()
	b.entreprises.entreprises["123456789"] = &entity.Entreprise{Siren: "123456789", NomEntreprise: "BOULANGERIE DUPONT"}
	b.qClients.questionnaires["123456789"] = &entity.QuestionnaireClient{EntrepriseSiren: "123456789"}

	resp, err := b.workflow.Identifier(context.Background(), intake.TypeCollaborateur, "123456789")
	require.NoError(t, err)
	assert.False(t, resp.DejaComplete)
	assert.NotEmpty(t, resp.Token)
}

func TestSoumettreClient_SansSession(t *testing.T) {
	b := nouveauBanc()

	_, err := b.workflow.SoumettreClient(context.Background(), &dto.QuestionnaireClientForm{Token: "jeton-inconnu"})
	assert.ErrorIs(t, err, domain.ErrSessionExpiree)
}

func TestSoumettreClient_JetonDuMauvaisParcours(t *testing.T) {
	b := nouveauBanc()
	resp, err := b.workflow.Identifier(context.Background(), intake.TypeCollaborateur, "123456789")
	require.NoError(t, err)

	_, err = b.workflow.SoumettreClient(context.Background(), &dto.QuestionnaireClientForm{Token: resp.Token})
	assert.ErrorIs(t, err, domain.ErrSessionExpiree)
}

func TestSoumettreClient_CreeEntrepriseEtQuestionnaire(t *testing.T) {
	b := nouveauBanc()
	ident, err := b.workflow.Identifier(context.Background(), intake.TypeClient, "123456789")
	require.NoError(t, err)

	form := &dto.QuestionnaireClientForm{
		Token:                  ident.Token,
		LogicielFacturation:    true,
		LogicielFacturationNom: "EBP",
		GestionFuture:          "deleguer",
		AccompagnementSouhaite: []string{"formation", "support"},
	}
	resp, err := b.workflow.SoumettreClient(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "123456789", resp.Siren)

	e := b.entreprises.entreprises["123456789"]
	require.NotNil(t, e)
	assert.Equal(t, "BOULANGERIE DUPONT", e.NomEntreprise)

	q := b.qClients.questionnaires["123456789"]
	require.NotNil(t, q)
	assert.True(t, q.LogicielFacturation)
	assert.Equal(t, "EBP", q.LogicielFacturationNom)
	assert.Equal(t, []string{"formation", "support"}, q.AccompagnementSouhaite)

	// Le jeton est consommé : une seconde soumission est refusée
	_, err = b.workflow.SoumettreClient(context.Background(), form)
	assert.ErrorIs(t, err, domain.ErrSessionExpiree)
}

func TestSoumettreClient_NomExistantConserve(t *testing.T) {
	// L'entreprise déjà connue garde son nom d'origine, même si le registre
	// en retourne un autre depuis.
	b := nouveauBanc()
	b.entreprises.entreprises["123456789"] = &entity.Entreprise{Siren: "123456789", NomEntreprise: "ANCIEN NOM"}
	b.recherche.resultat = &sirene.Resultat{Siren: "123456789", Nom: "NOUVEAU NOM"}

	ident, err := b.workflow.Identifier(context.Background(), intake.TypeClient, "123456789")
	require.NoError(t, err)

	_, err = b.workflow.SoumettreClient(context.Background(), &dto.QuestionnaireClientForm{Token: ident.Token})
	require.NoError(t, err)

	assert.Equal(t, "ANCIEN NOM", b.entreprises.entreprises["123456789"].NomEntreprise)
}

func TestSoumettreCollaborateur_AssocieLeCollaborateur(t *testing.T) {
	b := nouveauBanc()
	ident, err := b.workflow.Identifier(context.Background(), intake.TypeCollaborateur, "123456789")
	require.NoError(t, err)

	collabID := uuid.New()
	form := &dto.QuestionnaireCollaborateurForm{
		Token:            ident.Token,
		AssujettieTVA:    "oui",
		RegimeTVA:        "reel_simplifie",
		NbFacturesVentes: "50_200",
		VenteBtoBExport:  true,
	}
	resp, err := b.workflow.SoumettreCollaborateur(context.Background(), collabID, form)
	require.NoError(t, err)
	assert.Equal(t, "123456789", resp.Siren)

	q := b.qCollabs.questionnaires["123456789"]
	require.NotNil(t, q)
	assert.Equal(t, collabID, q.CollaborateurID)
	assert.Equal(t, "oui", q.AssujettieTVA)
	assert.True(t, q.VenteBtoBExport)
}
