package repository

import (
	"context"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
)

// Filtres du tableau de bord sur la complétude des questionnaires.
const (
	FiltreTous              = "all"
	FiltreClientSeul        = "client_only"
	FiltreCollaborateurSeul = "collaborateur_only"
	FiltreLesDeux           = "both"
	FiltreAucun             = "none"
)

// TriParDefaut du tableau de bord : dernières entreprises modifiées en tête.
const TriParDefaut = "-date_modification"

// CriteresDossiers paramètres de recherche du tableau de bord. Les entreprises
// archivées sont toujours exclues.
type CriteresDossiers struct {
	// Recherche filtre par SIREN ou nom d'entreprise (sous-chaîne,
	// insensible à la casse et aux accents). Vide = pas de filtre.
	Recherche string

	// Filtre est l'une des constantes Filtre*. Toute autre valeur équivaut
	// à FiltreTous.
	Filtre string

	// Tri : siren, nom_entreprise, date_creation ou date_modification,
	// préfixé de "-" pour l'ordre décroissant. Toute valeur hors liste
	// blanche retombe sur TriParDefaut.
	Tri string
}

// StatistiquesTableau compteurs affichés en tête du tableau de bord.
// Le total d'entreprises exclut les archivées ; les compteurs de
// questionnaires sont globaux.
type StatistiquesTableau struct {
	TotalEntreprises            int64 `json:"total_entreprises"`
	QuestionnairesClient        int64 `json:"questionnaires_client"`
	QuestionnairesCollaborateur int64 `json:"questionnaires_collaborateur"`
}

// DossierRepository requêtes transverses entreprise + questionnaires du
// tableau de bord et de l'export.
type DossierRepository interface {
	Stats(ctx context.Context) (*StatistiquesTableau, error)
	Rechercher(ctx context.Context, criteres CriteresDossiers) ([]entity.DossierEntreprise, error)

	// GetDossier retourne l'entreprise et ses questionnaires éventuels.
	// (nil, nil) si l'entreprise n'existe pas.
	GetDossier(ctx context.Context, siren string) (*entity.DossierEntreprise, error)
}
