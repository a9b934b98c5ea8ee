package dto

// ValidationSirenResponse résultat d'une vérification de SIREN auprès du
// registre Sirene. Même forme en succès (nom renseigné) et en échec (error
// renseigné), pour une consommation directe par le formulaire.
type ValidationSirenResponse struct {
	Success bool   `json:"success"`
	Siren   string `json:"siren,omitempty"`
	Nom     string `json:"nom,omitempty"`
	Error   string `json:"error,omitempty"`
}
