package entity

import "time"

// Entreprise est l'agrégat central : toutes les données sont regroupées par
// SIREN, qui sert de clé primaire.
type Entreprise struct {
	Siren            string    `json:"siren"`
	NomEntreprise    string    `json:"nom_entreprise"`
	DateCreation     time.Time `json:"date_creation"`
	DateModification time.Time `json:"date_modification"`
	IsArchived       bool      `json:"is_archived"`
}

// DossierEntreprise réunit une entreprise et ses deux questionnaires
// éventuels, tel qu'affiché sur le tableau de bord et exporté en CSV.
type DossierEntreprise struct {
	Entreprise                 Entreprise                  `json:"entreprise"`
	QuestionnaireClient        *QuestionnaireClient        `json:"questionnaire_client,omitempty"`
	QuestionnaireCollaborateur *QuestionnaireCollaborateur `json:"questionnaire_collaborateur,omitempty"`
}
