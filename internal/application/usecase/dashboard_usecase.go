package usecase

import (
	"context"
	"strings"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/dto"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/search"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/repository"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/logger"
)

// TableauDeBord construit la vue de suivi des collaborateurs : compteurs
// globaux et liste des entreprises actives avec l'état de leurs
// questionnaires.
type TableauDeBord struct {
	dossiers repository.DossierRepository
	log      *logger.Logger
}

// NewTableauDeBord construit le cas d'usage du tableau de bord.
func NewTableauDeBord(dossiers repository.DossierRepository, log *logger.Logger) *TableauDeBord {
	return &TableauDeBord{dossiers: dossiers, log: log}
}

// Afficher retourne les statistiques et la liste filtrée. La recherche est
// normalisée (casse, accents) avant d'être transmise au dépôt ; les critères
// sont renvoyés tels que saisis pour que l'interface conserve son état.
func (t *TableauDeBord) Afficher(ctx context.Context, recherche, filtre, tri string) (*dto.DashboardResponse, error) {
	stats, err := t.dossiers.Stats(ctx)
	if err != nil {
		return nil, err
	}

	criteres := repository.CriteresDossiers{
		Recherche: search.Plier(recherche),
		Filtre:    filtre,
		Tri:       tri,
	}
	dossiers, err := t.dossiers.Rechercher(ctx, criteres)
	if err != nil {
		return nil, err
	}

	lignes := make([]dto.LigneTableau, 0, len(dossiers))
	for _, d := range dossiers {
		lignes = append(lignes, dto.LigneTableau{
			Siren:            d.Entreprise.Siren,
			NomEntreprise:    d.Entreprise.NomEntreprise,
			DateCreation:     d.Entreprise.DateCreation,
			DateModification: d.Entreprise.DateModification,
			AClient:          d.QuestionnaireClient != nil,
			ACollaborateur:   d.QuestionnaireCollaborateur != nil,
		})
	}

	return &dto.DashboardResponse{
		Stats:       *stats,
		Entreprises: lignes,
		Recherche:   strings.TrimSpace(recherche),
		Filtre:      filtre,
		Tri:         tri,
	}, nil
}
