package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuestionnaireCollaborateur est le questionnaire rempli en interne par un
// collaborateur du cabinet (un seul par entreprise, la soumission remplace
// l'existant).
type QuestionnaireCollaborateur struct {
	EntrepriseSiren string `json:"entreprise_siren"`

	// Assujettissement et activité
	AssujettieTVA       string `json:"assujettie_tva"`
	CodeAPE             string `json:"code_ape"`
	ActivitePrecise     string `json:"activite_precise"`
	TailleEntreprise    string `json:"taille_entreprise"`
	RegimeTVA           string `json:"regime_tva"`
	ActiviteExonereeTVA string `json:"activite_exoneree_tva"`
	PlateformeAgreee    bool   `json:"plateforme_agreee"`
	PlateformeAgreeeNom string `json:"plateforme_agreee_nom"`

	// Flux facturation - ventes
	NbFacturesVentes    string `json:"nb_factures_ventes"`
	NbClientsActifs     string `json:"nb_clients_actifs"`
	VenteBtoBDomestique bool   `json:"vente_btob_domestique"`
	VenteBtoBExport     bool   `json:"vente_btob_export"`
	VenteBtoCFacture    bool   `json:"vente_btoc_facture"`
	VenteBtoCCaisse     bool   `json:"vente_btoc_caisse"`

	// Flux facturation - achats
	NbFacturesAchats            string `json:"nb_factures_achats"`
	NbFournisseursActifs        string `json:"nb_fournisseurs_actifs"`
	AchatBtoBDomestique         bool   `json:"achat_btob_domestique"`
	AchatBtoBIntracommunautaire bool   `json:"achat_btob_intracommunautaire"`
	AchatBtoBHorsUE             bool   `json:"achat_btob_hors_ue"`

	Commentaires string `json:"commentaires"`

	// Métadonnées
	CollaborateurID    uuid.UUID  `json:"collaborateur_id"`
	CollaborateurNom   string     `json:"collaborateur_nom,omitempty"`
	DateCompletion     time.Time  `json:"date_completion"`
	DateModification   time.Time  `json:"date_modification"`
	CookiesConsentDate *time.Time `json:"cookies_consent_date,omitempty"`
}
