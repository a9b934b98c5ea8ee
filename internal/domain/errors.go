package domain

import "errors"

// Erreurs métier. Les messages sont en français car ils sont affichés tels
// quels aux utilisateurs (clients comme collaborateurs).
var (
	// Identification SIREN
	ErrSirenRequis   = errors.New("veuillez saisir un numéro SIREN")
	ErrSirenInvalide = errors.New("le SIREN doit contenir exactement 9 chiffres")

	// API Sirene (INSEE)
	ErrEntrepriseNonTrouvee = errors.New("entreprise non trouvée")
	ErrConnexionINSEE       = errors.New("erreur de connexion à l'API INSEE")
	ErrDelaiDepasse         = errors.New("délai d'attente dépassé")
	ErrTechnique            = errors.New("erreur technique")

	// Parcours de collecte
	ErrSessionExpiree = errors.New("session expirée, veuillez recommencer")

	// Authentification collaborateur
	ErrIdentifiantsInvalides = errors.New("email ou mot de passe incorrect")
	ErrUtilisateurNonTrouve  = errors.New("utilisateur non trouvé")
	ErrNonAutorise           = errors.New("authentification requise")

	// Ressources
	ErrNotFound = errors.New("ressource non trouvée")
)
