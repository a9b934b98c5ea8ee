package dto

// IdentificationRequest saisie du SIREN au début du parcours.
type IdentificationRequest struct {
	Siren string `json:"siren" form:"siren"`
}

// IdentificationResponse résultat de l'identification. Si un questionnaire du
// type demandé existe déjà, DejaComplete est vrai et aucun jeton n'est émis.
// Sinon le jeton ouvre la session de saisie du questionnaire.
type IdentificationResponse struct {
	Siren         string `json:"siren"`
	NomEntreprise string `json:"nom_entreprise"`
	DejaComplete  bool   `json:"deja_complete"`
	Token         string `json:"token,omitempty"`
}

// SoumissionResponse confirmation d'enregistrement d'un questionnaire.
type SoumissionResponse struct {
	Siren   string `json:"siren"`
	Message string `json:"message"`
}
