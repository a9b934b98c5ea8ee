package usecase

import (
	"context"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/repository"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/logger"
)

// Dossiers consultation et archivage des dossiers d'entreprise.
type Dossiers struct {
	dossiers    repository.DossierRepository
	entreprises repository.EntrepriseRepository
	log         *logger.Logger
}

// NewDossiers construit le cas d'usage des dossiers.
func NewDossiers(dossiers repository.DossierRepository, entreprises repository.EntrepriseRepository, log *logger.Logger) *Dossiers {
	return &Dossiers{dossiers: dossiers, entreprises: entreprises, log: log}
}

// Consulter retourne le dossier complet d'une entreprise : identité et
// questionnaires présents. Les dossiers archivés restent consultables.
func (d *Dossiers) Consulter(ctx context.Context, siren string) (*entity.DossierEntreprise, error) {
	dossier, err := d.dossiers.GetDossier(ctx, siren)
	if err != nil {
		return nil, err
	}
	if dossier == nil {
		return nil, domain.ErrNotFound
	}
	return dossier, nil
}

// Archiver retire l'entreprise du tableau de bord et des exports sans rien
// supprimer. L'opération est idempotente.
func (d *Dossiers) Archiver(ctx context.Context, siren string) (*entity.Entreprise, error) {
	e, err := d.entreprises.GetBySiren(ctx, siren)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if err := d.entreprises.Archive(ctx, siren); err != nil {
		return nil, err
	}
	d.log.Info().Str("siren", siren).Str("nom", e.NomEntreprise).Msg("entreprise archivée")
	return e, nil
}
