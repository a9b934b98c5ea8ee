package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/usecase"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/repository"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/logger"
)

func TestAfficher_StatsEtLignes(t *testing.T) {
	dossiers := &fauxDossiers{
		stats: repository.StatistiquesTableau{
			TotalEntreprises:            2,
			QuestionnairesClient:        1,
			QuestionnairesCollaborateur: 1,
		},
		dossiers: []entity.DossierEntreprise{
			{
				Entreprise:          entity.Entreprise{Siren: "123456789", NomEntreprise: "BOULANGERIE DUPONT"},
				QuestionnaireClient: &entity.QuestionnaireClient{EntrepriseSiren: "123456789"},
			},
			{
				Entreprise:                 entity.Entreprise{Siren: "987654321", NomEntreprise: "SARL MARTIN"},
				QuestionnaireCollaborateur: &entity.QuestionnaireCollaborateur{EntrepriseSiren: "987654321"},
			},
		},
	}
	tb := usecase.NewTableauDeBord(dossiers, logger.New(logger.Config{Env: "test", Level: "error"}))

	resp, err := tb.Afficher(context.Background(), "", repository.FiltreTous, "")
	require.NoError(t, err)

	assert.EqualValues(t, 2, resp.Stats.TotalEntreprises)
	require.Len(t, resp.Entreprises, 2)
	assert.True(t, resp.Entreprises[0].AClient)
	assert.False(t, resp.Entreprises[0].ACollaborateur)
	assert.False(t, resp.Entreprises[1].AClient)
	assert.True(t, resp.Entreprises[1].ACollaborateur)
}

func TestAfficher_RecherchePliee(t *testing.T) {
	dossiers := &fauxDossiers{}
	tb := usecase.NewTableauDeBord(dossiers, logger.New(logger.Config{Env: "test", Level: "error"}))

	resp, err := tb.Afficher(context.Background(), "  Électricité  ", repository.FiltreClientSeul, "-siren")
	require.NoError(t, err)

	// Le dépôt reçoit le terme normalisé, l'interface récupère la saisie
	assert.Equal(t, "electricite", dossiers.criteres.Recherche)
	assert.Equal(t, repository.FiltreClientSeul, dossiers.criteres.Filtre)
	assert.Equal(t, "-siren", dossiers.criteres.Tri)
	assert.Equal(t, "Électricité", resp.Recherche)
	assert.Equal(t, "-siren", resp.Tri)
}
