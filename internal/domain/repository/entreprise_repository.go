package repository

import (
	"context"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
)

// EntrepriseRepository accès aux entreprises. Les lectures retournent
// (nil, nil) quand l'entreprise n'existe pas.
type EntrepriseRepository interface {
	GetBySiren(ctx context.Context, siren string) (*entity.Entreprise, error)

	// FindOrCreate retourne l'entreprise existante ou la crée avec le nom
	// donné. Si elle existe déjà, le nom en base est conservé tel quel.
	FindOrCreate(ctx context.Context, siren, nomEntreprise string) (*entity.Entreprise, error)

	// Archive marque l'entreprise comme archivée (suppression logique) et
	// met à jour sa date de modification.
	Archive(ctx context.Context, siren string) error
}
