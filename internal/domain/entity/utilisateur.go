package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Utilisateur est un collaborateur du cabinet. L'email sert d'identifiant de
// connexion.
type Utilisateur struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Prenom       string    `json:"prenom"`
	Nom          string    `json:"nom"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsStaff      bool      `json:"is_staff"`
	IsActive     bool      `json:"is_active"`
	DateJoined   time.Time `json:"date_joined"`
}

// NomComplet retourne "Prénom Nom", ou l'email si aucun nom n'est renseigné.
func (u Utilisateur) NomComplet() string {
	n := strings.TrimSpace(u.Prenom + " " + u.Nom)
	if n == "" {
		return u.Email
	}
	return n
}
