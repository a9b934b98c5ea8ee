package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/repository"
)

// NomFichierExport nom du fichier proposé au téléchargement.
const NomFichierExport = "export_questionnaires.csv"

// formatDateExport format attendu par les tableurs français.
const formatDateExport = "02/01/2006 15:04"

// Export construit l'extraction CSV de toutes les entreprises actives et de
// leurs questionnaires. Les codes à choix sont exportés avec leur libellé
// français ; les colonnes d'un questionnaire absent restent vides.
type Export struct {
	dossiers repository.DossierRepository
}

// NewExport construit le cas d'usage d'export.
func NewExport(dossiers repository.DossierRepository) *Export {
	return &Export{dossiers: dossiers}
}

// Exporter retourne les lignes du CSV, en-tête comprise. Les entreprises
// archivées sont exclues ; l'ordre suit celui du tableau de bord (dernières
// modifications en tête).
func (x *Export) Exporter(ctx context.Context) ([][]string, error) {
	dossiers, err := x.dossiers.Rechercher(ctx, repository.CriteresDossiers{})
	if err != nil {
		return nil, err
	}

	lignes := make([][]string, 0, len(dossiers)+1)
	lignes = append(lignes, enTeteExport())
	for _, d := range dossiers {
		lignes = append(lignes, ligneExport(d))
	}
	return lignes, nil
}

func enTeteExport() []string {
	return []string{
		"SIREN",
		"Nom Entreprise",
		"Date Création",
		"Date Modification",
		"Q. Client Complété",
		"Q. Collaborateur Complété",
		// Client
		"Client - Logiciel Facturation",
		"Client - Logiciel Facturation Nom",
		"Client - Factures Format Électronique",
		"Client - Logiciel Devis",
		"Client - Logiciel Devis Nom",
		"Client - Caisse Enregistreuse",
		"Client - Caisse Enregistreuse Nom",
		"Client - Caisse Certifiée",
		"Client - Plateforme Agréée",
		"Client - Plateforme Agréée Nom",
		"Client - Gestion Future",
		"Client - Aisance Outils",
		"Client - Réception Factures Achats",
		"Client - Reception Achats Autre",
		"Client - Envoi Factures Ventes",
		"Client - Envoi Ventes Autre",
		"Client - Conservation Factures",
		"Client - Accompagnement Souhaité",
		"Client - Accompagnement Autre",
		"Client - Commentaires",
		// Collaborateur
		"Collab - Assujettie TVA",
		"Collab - Code APE",
		"Collab - Activité Précise",
		"Collab - Taille Entreprise",
		"Collab - Régime TVA",
		"Collab - Activité Exonérée TVA",
		"Collab - Plateforme Agréée",
		"Collab - Plateforme Agréée Nom",
		"Collab - Nb Factures Ventes",
		"Collab - Nb Clients Actifs",
		"Collab - Vente B2B France",
		"Collab - Vente B2B Export",
		"Collab - Vente B2C Facture",
		"Collab - Vente B2C Caisse",
		"Collab - Nb Factures Achats",
		"Collab - Nb Fournisseurs Actifs",
		"Collab - Achat B2B France",
		"Collab - Achat B2B UE",
		"Collab - Achat B2B Hors UE",
		"Collab - Commentaires",
	}
}

func ligneExport(d entity.DossierEntreprise) []string {
	e := d.Entreprise

	avecClient := d.QuestionnaireClient != nil
	var qc entity.QuestionnaireClient
	if avecClient {
		qc = *d.QuestionnaireClient
	}

	avecCollab := d.QuestionnaireCollaborateur != nil
	var qco entity.QuestionnaireCollaborateur
	if avecCollab {
		qco = *d.QuestionnaireCollaborateur
	}

	// Colonnes d'un questionnaire absent : toujours vides, y compris les
	// booléens qui vaudraient "Non" sur un questionnaire présent.
	boolClient := func(b bool) string { return caseBool(avecClient, b) }
	texteClient := func(s string) string { return caseTexte(avecClient, s) }
	libClient := func(labels map[string]string, code string) string { return caseLibelle(avecClient, labels, code) }
	boolCollab := func(b bool) string { return caseBool(avecCollab, b) }
	texteCollab := func(s string) string { return caseTexte(avecCollab, s) }
	libCollab := func(labels map[string]string, code string) string { return caseLibelle(avecCollab, labels, code) }

	accompagnement := ""
	if len(qc.AccompagnementSouhaite) > 0 {
		accompagnement = strings.Join(qc.AccompagnementSouhaite, ", ")
	}

	return []string{
		e.Siren,
		e.NomEntreprise,
		dateExport(e.DateCreation),
		dateExport(e.DateModification),
		ouiNon(avecClient),
		ouiNon(avecCollab),
		// Client
		boolClient(qc.LogicielFacturation),
		texteClient(qc.LogicielFacturationNom),
		libClient(entity.LabelsOuiNonNSP, qc.FacturesFormatElectronique),
		boolClient(qc.LogicielDevis),
		texteClient(qc.LogicielDevisNom),
		libClient(entity.LabelsCaisse, qc.CaisseEnregistreuse),
		texteClient(qc.CaisseEnregistreuseNom),
		libClient(entity.LabelsOuiNonNSP, qc.CaisseCertifiee),
		libClient(entity.LabelsOuiNonNSP, qc.PlateformeAgreee),
		texteClient(qc.PlateformeAgreeeNom),
		libClient(entity.LabelsGestion, qc.GestionFuture),
		libClient(entity.LabelsAisance, qc.AisanceOutils),
		libClient(entity.LabelsFluxFactures, qc.ReceptionFacturesAchats),
		texteClient(qc.ReceptionAchatsAutre),
		libClient(entity.LabelsFluxFactures, qc.EnvoiFacturesVentes),
		texteClient(qc.EnvoiVentesAutre),
		libClient(entity.LabelsConservation, qc.ConservationFactures),
		accompagnement,
		texteClient(qc.AccompagnementAutre),
		texteClient(qc.Commentaires),
		// Collaborateur
		libCollab(entity.LabelsTVA, qco.AssujettieTVA),
		texteCollab(qco.CodeAPE),
		texteCollab(qco.ActivitePrecise),
		libCollab(entity.LabelsTaille, qco.TailleEntreprise),
		libCollab(entity.LabelsRegimeTVA, qco.RegimeTVA),
		libCollab(entity.LabelsActiviteExoneree, qco.ActiviteExonereeTVA),
		boolCollab(qco.PlateformeAgreee),
		texteCollab(qco.PlateformeAgreeeNom),
		libCollab(entity.LabelsNbFactures, qco.NbFacturesVentes),
		libCollab(entity.LabelsNbPartenaires, qco.NbClientsActifs),
		boolCollab(qco.VenteBtoBDomestique),
		boolCollab(qco.VenteBtoBExport),
		boolCollab(qco.VenteBtoCFacture),
		boolCollab(qco.VenteBtoCCaisse),
		libCollab(entity.LabelsNbFactures, qco.NbFacturesAchats),
		libCollab(entity.LabelsNbPartenaires, qco.NbFournisseursActifs),
		boolCollab(qco.AchatBtoBDomestique),
		boolCollab(qco.AchatBtoBIntracommunautaire),
		boolCollab(qco.AchatBtoBHorsUE),
		texteCollab(qco.Commentaires),
	}
}

func dateExport(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(formatDateExport)
}

func ouiNon(b bool) string {
	if b {
		return "Oui"
	}
	return "Non"
}

func caseBool(present, valeur bool) string {
	if !present {
		return ""
	}
	return ouiNon(valeur)
}

func caseTexte(present bool, s string) string {
	if !present {
		return ""
	}
	return s
}

func caseLibelle(present bool, labels map[string]string, code string) string {
	if !present {
		return ""
	}
	return entity.Libelle(labels, code)
}
