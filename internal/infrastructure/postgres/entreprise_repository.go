package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
)

const colonnesEntreprise = `siren, nom_entreprise, date_creation, date_modification, is_archived`

// EntrepriseRepository dépôt PostgreSQL des entreprises.
type EntrepriseRepository struct {
	pool *pgxpool.Pool
}

// NewEntrepriseRepository construit le dépôt.
func NewEntrepriseRepository(pool *pgxpool.Pool) *EntrepriseRepository {
	return &EntrepriseRepository{pool: pool}
}

func scanEntreprise(row pgx.Row) (*entity.Entreprise, error) {
	var e entity.Entreprise
	err := row.Scan(&e.Siren, &e.NomEntreprise, &e.DateCreation, &e.DateModification, &e.IsArchived)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetBySiren retourne l'entreprise, ou (nil, nil) si elle n'existe pas.
func (r *EntrepriseRepository) GetBySiren(ctx context.Context, siren string) (*entity.Entreprise, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+colonnesEntreprise+` FROM entreprises WHERE siren = $1`, siren)
	return scanEntreprise(row)
}

// FindOrCreate crée l'entreprise si besoin puis la retourne. En cas de
// création concurrente, la première insertion gagne et son nom est conservé.
func (r *EntrepriseRepository) FindOrCreate(ctx context.Context, siren, nomEntreprise string) (*entity.Entreprise, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO entreprises (siren, nom_entreprise) VALUES ($1, $2)
		 ON CONFLICT (siren) DO NOTHING`,
		siren, nomEntreprise)
	if err != nil {
		return nil, err
	}
	return r.GetBySiren(ctx, siren)
}

// Archive marque l'entreprise comme archivée. Idempotent.
func (r *EntrepriseRepository) Archive(ctx context.Context, siren string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE entreprises SET is_archived = TRUE, date_modification = now() WHERE siren = $1`,
		siren)
	return err
}
