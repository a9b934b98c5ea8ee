package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuestionnaireClient est le questionnaire rempli par les clients du cabinet
// (un seul par entreprise, la soumission remplace l'existant).
type QuestionnaireClient struct {
	EntrepriseSiren string `json:"entreprise_siren"`

	// Partie 1 : équipement actuel
	LogicielFacturation        bool   `json:"logiciel_facturation"`
	LogicielFacturationNom     string `json:"logiciel_facturation_nom"`
	FacturesFormatElectronique string `json:"factures_format_electronique"`
	LogicielDevis              bool   `json:"logiciel_devis"`
	LogicielDevisNom           string `json:"logiciel_devis_nom"`
	CaisseEnregistreuse        string `json:"caisse_enregistreuse"`
	CaisseEnregistreuseNom     string `json:"caisse_enregistreuse_nom"`
	CaisseCertifiee            string `json:"caisse_certifiee"`
	PlateformeAgreee           string `json:"plateforme_agreee"`
	PlateformeAgreeeNom        string `json:"plateforme_agreee_nom"`

	// Partie 2 : gestion de la facturation
	GestionFuture string `json:"gestion_future"`
	AisanceOutils string `json:"aisance_outils"`

	// Partie 3 : informations complémentaires
	ReceptionFacturesAchats string   `json:"reception_factures_achats"`
	ReceptionAchatsAutre    string   `json:"reception_achats_autre"`
	EnvoiFacturesVentes     string   `json:"envoi_factures_ventes"`
	EnvoiVentesAutre        string   `json:"envoi_ventes_autre"`
	ConservationFactures    string   `json:"conservation_factures"`
	AccompagnementSouhaite  []string `json:"accompagnement_souhaite"`
	AccompagnementAutre     string   `json:"accompagnement_autre"`
	Commentaires            string   `json:"commentaires"`

	// Métadonnées
	DateCompletion          time.Time  `json:"date_completion"`
	DateModification        time.Time  `json:"date_modification"`
	ModifieParCollaborateur *uuid.UUID `json:"modifie_par_collaborateur,omitempty"`
	CookiesConsentDate      *time.Time `json:"cookies_consent_date,omitempty"`
}
