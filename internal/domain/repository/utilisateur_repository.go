package repository

import (
	"context"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
)

// UtilisateurRepository accès aux comptes collaborateurs.
// FindByEmail retourne (nil, nil) si aucun compte ne correspond.
type UtilisateurRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Utilisateur, error)
	FindByID(ctx context.Context, id string) (*entity.Utilisateur, error)
	Create(ctx context.Context, u *entity.Utilisateur) error
}
