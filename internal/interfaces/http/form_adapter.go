package http

import (
	"github.com/valyala/fasthttp"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/dto"
)

// Adaptation des formulaires HTML POST. Les cases à cocher suivent la
// sémantique des navigateurs : la présence du champ vaut vrai, quelle que
// soit sa valeur ; un champ absent vaut faux.

func champ(args *fasthttp.Args, nom string) string {
	return string(args.Peek(nom))
}

func coche(args *fasthttp.Args, nom string) bool {
	return args.Has(nom)
}

func champsMultiples(args *fasthttp.Args, nom string) []string {
	valeurs := args.PeekMulti(nom)
	if len(valeurs) == 0 {
		return nil
	}
	out := make([]string, len(valeurs))
	for i, v := range valeurs {
		out[i] = string(v)
	}
	return out
}

func parseQuestionnaireClientForm(args *fasthttp.Args) *dto.QuestionnaireClientForm {
	return &dto.QuestionnaireClientForm{
		Token:                      champ(args, "token"),
		LogicielFacturation:        coche(args, "logiciel_facturation"),
		LogicielFacturationNom:     champ(args, "logiciel_facturation_nom"),
		FacturesFormatElectronique: champ(args, "factures_format_electronique"),
		LogicielDevis:              coche(args, "logiciel_devis"),
		LogicielDevisNom:           champ(args, "logiciel_devis_nom"),
		CaisseEnregistreuse:        champ(args, "caisse_enregistreuse"),
		CaisseEnregistreuseNom:     champ(args, "caisse_enregistreuse_nom"),
		CaisseCertifiee:            champ(args, "caisse_certifiee"),
		PlateformeAgreee:           champ(args, "plateforme_agreee"),
		PlateformeAgreeeNom:        champ(args, "plateforme_agreee_nom"),
		GestionFuture:              champ(args, "gestion_future"),
		AisanceOutils:              champ(args, "aisance_outils"),
		ReceptionFacturesAchats:    champ(args, "reception_factures_achats"),
		ReceptionAchatsAutre:       champ(args, "reception_achats_autre"),
		EnvoiFacturesVentes:        champ(args, "envoi_factures_ventes"),
		EnvoiVentesAutre:           champ(args, "envoi_ventes_autre"),
		ConservationFactures:       champ(args, "conservation_factures"),
		AccompagnementSouhaite:     champsMultiples(args, "accompagnement_souhaite"),
		AccompagnementAutre:        champ(args, "accompagnement_autre"),
		Commentaires:               champ(args, "commentaires"),
	}
}

func parseQuestionnaireCollaborateurForm(args *fasthttp.Args) *dto.QuestionnaireCollaborateurForm {
	return &dto.QuestionnaireCollaborateurForm{
		Token:                       champ(args, "token"),
		AssujettieTVA:               champ(args, "assujettie_tva"),
		CodeAPE:                     champ(args, "code_ape"),
		ActivitePrecise:             champ(args, "activite_precise"),
		TailleEntreprise:            champ(args, "taille_entreprise"),
		RegimeTVA:                   champ(args, "regime_tva"),
		ActiviteExonereeTVA:         champ(args, "activite_exoneree_tva"),
		PlateformeAgreee:            coche(args, "plateforme_agreee"),
		PlateformeAgreeeNom:         champ(args, "plateforme_agreee_nom"),
		NbFacturesVentes:            champ(args, "nb_factures_ventes"),
		NbClientsActifs:             champ(args, "nb_clients_actifs"),
		VenteBtoBDomestique:         coche(args, "vente_btob_domestique"),
		VenteBtoBExport:             coche(args, "vente_btob_export"),
		VenteBtoCFacture:            coche(args, "vente_btoc_facture"),
		VenteBtoCCaisse:             coche(args, "vente_btoc_caisse"),
		NbFacturesAchats:            champ(args, "nb_factures_achats"),
		NbFournisseursActifs:        champ(args, "nb_fournisseurs_actifs"),
		AchatBtoBDomestique:         coche(args, "achat_btob_domestique"),
		AchatBtoBIntracommunautaire: coche(args, "achat_btob_intracommunautaire"),
		AchatBtoBHorsUE:             coche(args, "achat_btob_hors_ue"),
		Commentaires:                champ(args, "commentaires"),
	}
}
