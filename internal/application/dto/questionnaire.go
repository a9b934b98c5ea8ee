package dto

// QuestionnaireClientForm données du formulaire client. Les champs booléens
// correspondent à des cases à cocher : présents dans le POST = vrai.
type QuestionnaireClientForm struct {
	Token string `form:"token"`

	LogicielFacturation        bool   `form:"logiciel_facturation"`
	LogicielFacturationNom     string `form:"logiciel_facturation_nom"`
	FacturesFormatElectronique string `form:"factures_format_electronique"`
	LogicielDevis              bool   `form:"logiciel_devis"`
	LogicielDevisNom           string `form:"logiciel_devis_nom"`
	CaisseEnregistreuse        string `form:"caisse_enregistreuse"`
	CaisseEnregistreuseNom     string `form:"caisse_enregistreuse_nom"`
	CaisseCertifiee            string `form:"caisse_certifiee"`
	PlateformeAgreee           string `form:"plateforme_agreee"`
	PlateformeAgreeeNom        string `form:"plateforme_agreee_nom"`
	GestionFuture              string `form:"gestion_future"`
	AisanceOutils              string `form:"aisance_outils"`
	ReceptionFacturesAchats    string `form:"reception_factures_achats"`
	ReceptionAchatsAutre       string `form:"reception_achats_autre"`
	EnvoiFacturesVentes        string `form:"envoi_factures_ventes"`
	EnvoiVentesAutre           string `form:"envoi_ventes_autre"`
	ConservationFactures       string `form:"conservation_factures"`

	// Cases à choix multiples (une valeur par case cochée).
	AccompagnementSouhaite []string `form:"accompagnement_souhaite"`
	AccompagnementAutre    string   `form:"accompagnement_autre"`

	Commentaires string `form:"commentaires"`
}

// QuestionnaireCollaborateurForm données du formulaire collaborateur.
type QuestionnaireCollaborateurForm struct {
	Token string `form:"token"`

	AssujettieTVA       string `form:"assujettie_tva"`
	CodeAPE             string `form:"code_ape"`
	ActivitePrecise     string `form:"activite_precise"`
	TailleEntreprise    string `form:"taille_entreprise"`
	RegimeTVA           string `form:"regime_tva"`
	ActiviteExonereeTVA string `form:"activite_exoneree_tva"`
	PlateformeAgreee    bool   `form:"plateforme_agreee"`
	PlateformeAgreeeNom string `form:"plateforme_agreee_nom"`

	NbFacturesVentes    string `form:"nb_factures_ventes"`
	NbClientsActifs     string `form:"nb_clients_actifs"`
	VenteBtoBDomestique bool   `form:"vente_btob_domestique"`
	VenteBtoBExport     bool   `form:"vente_btob_export"`
	VenteBtoCFacture    bool   `form:"vente_btoc_facture"`
	VenteBtoCCaisse     bool   `form:"vente_btoc_caisse"`

	NbFacturesAchats            string `form:"nb_factures_achats"`
	NbFournisseursActifs        string `form:"nb_fournisseurs_actifs"`
	AchatBtoBDomestique         bool   `form:"achat_btob_domestique"`
	AchatBtoBIntracommunautaire bool   `form:"achat_btob_intracommunautaire"`
	AchatBtoBHorsUE             bool   `form:"achat_btob_hors_ue"`

	Commentaires string `form:"commentaires"`
}
