package entity

// Libellés français des codes stockés en base. Les codes sont conservés tels
// quels en base et dans l'API ; les libellés servent à l'affichage et à
// l'export CSV.

// LabelsOuiNonNSP réponses oui / non / je ne sais pas.
var LabelsOuiNonNSP = map[string]string{
	"oui": "Oui",
	"non": "Non",
	"nsp": "Je ne sais pas",
}

// LabelsCaisse présence d'une caisse enregistreuse.
var LabelsCaisse = map[string]string{
	"oui": "Oui",
	"non": "Non",
	"na":  "Non applicable",
}

// LabelsGestion mode de gestion souhaité pour la facturation électronique.
var LabelsGestion = map[string]string{
	"interne":  "Gérer en interne avec accompagnement",
	"deleguer": "Déléguer au cabinet",
	"nsp":      "Je ne sais pas, besoin de conseils",
}

// LabelsAisance aisance avec les outils numériques.
var LabelsAisance = map[string]string{
	"tres_aise": "Très à l'aise",
	"moyen":     "Moyen",
	"pas_aise":  "Pas du tout à l'aise",
}

// LabelsFluxFactures canaux de réception des factures d'achats et d'envoi des
// factures de ventes (mêmes choix pour les deux questions).
var LabelsFluxFactures = map[string]string{
	"papier":     "Principalement par courrier papier",
	"email":      "Principalement par email (PDF)",
	"mixte":      "Mix papier/email",
	"plateforme": "Via plateforme dématérialisée",
	"autre":      "Autre",
}

// LabelsConservation mode de conservation des factures.
var LabelsConservation = map[string]string{
	"papier":       "Classement papier uniquement",
	"electronique": "Archivage électronique uniquement",
	"mixte":        "Mix papier + électronique",
	"cabinet":      "Confié au cabinet comptable",
}

// LabelsTVA assujettissement à la TVA.
var LabelsTVA = map[string]string{
	"oui":   "Oui",
	"non":   "Non",
	"doute": "J'ai un doute",
}

// LabelsTaille taille de l'entreprise.
var LabelsTaille = map[string]string{
	"tpe_pme": "TPE/PME",
	"eti":     "ETI",
	"grande":  "Grande entreprise",
}

// LabelsRegimeTVA régime de TVA.
var LabelsRegimeTVA = map[string]string{
	"franchise":        "Franchise en base",
	"reel_simplifie":   "Réel simplifié",
	"reel_trimestriel": "Réel trimestriel",
	"reel_mensuel":     "Réel mensuel",
}

// LabelsActiviteExoneree secteurs d'activité exonérés de TVA.
var LabelsActiviteExoneree = map[string]string{
	"sante":        "Prestations santé",
	"enseignement": "Enseignement et formation",
	"immobilier":   "Opérations immobilières",
	"asso":         "Associations à but non lucratif",
	"banque":       "Opérations bancaires et financières",
	"assurance":    "Opérations d'assurance",
	"mixte":        "Activité mixte ou n'exerce pas dans ces secteurs",
}

// LabelsNbFactures tranches de volume de factures (ventes comme achats).
var LabelsNbFactures = map[string]string{
	"moins_50":  "Moins de 50",
	"50_200":    "Entre 50 et 200",
	"200_1000":  "Entre 200 et 1000",
	"1000_5000": "Entre 1000 et 5000",
	"plus_5000": "Plus de 5000",
	"na":        "N/A",
}

// LabelsNbPartenaires tranches de nombre de clients ou fournisseurs actifs.
var LabelsNbPartenaires = map[string]string{
	"moins_10": "Moins de 10",
	"10_50":    "Entre 10 et 50",
	"50_200":   "Entre 50 et 200",
	"plus_200": "Plus de 200",
	"na":       "N/A",
}

// Libelle retourne le libellé français d'un code. Un code vide donne une
// chaîne vide ; un code inconnu est retourné tel quel plutôt que masqué.
func Libelle(labels map[string]string, code string) string {
	if code == "" {
		return ""
	}
	if l, ok := labels[code]; ok {
		return l
	}
	return code
}
