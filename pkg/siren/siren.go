package siren

// Longueur du numéro SIREN attribué par l'INSEE.
const Longueur = 9

// EstValide vérifie le format du SIREN : exactement 9 chiffres décimaux ASCII.
// La validation est purement locale et précède tout appel réseau ; la
// traduction en erreur métier est faite par la couche application.
func EstValide(s string) bool {
	if len(s) != Longueur {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// CleCache construit la clé de cache utilisée pour mémoriser le résultat
// d'une interrogation Sirene (même espace de noms que l'ancien outil interne).
func CleCache(s string) string {
	return "insee_siren_" + s
}
