package dto

import (
	"time"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/repository"
)

// LigneTableau une entreprise du tableau de bord avec l'état de complétude
// de ses deux questionnaires.
type LigneTableau struct {
	Siren            string    `json:"siren"`
	NomEntreprise    string    `json:"nom_entreprise"`
	DateCreation     time.Time `json:"date_creation"`
	DateModification time.Time `json:"date_modification"`
	AClient          bool      `json:"a_questionnaire_client"`
	ACollaborateur   bool      `json:"a_questionnaire_collaborateur"`
}

// DashboardResponse contenu complet du tableau de bord. Les critères sont
// renvoyés tels que saisis pour que l'interface conserve l'état des filtres.
type DashboardResponse struct {
	Stats       repository.StatistiquesTableau `json:"stats"`
	Entreprises []LigneTableau                 `json:"entreprises"`
	Recherche   string                         `json:"recherche"`
	Filtre      string                         `json:"filtre"`
	Tri         string                         `json:"tri"`
}
