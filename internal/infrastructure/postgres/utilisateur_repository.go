package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
)

const colonnesUtilisateur = `id, username, prenom, nom, email, password_hash, is_staff, is_active, date_joined`

// UtilisateurRepository dépôt PostgreSQL des comptes collaborateurs.
type UtilisateurRepository struct {
	pool *pgxpool.Pool
}

// NewUtilisateurRepository construit le dépôt.
func NewUtilisateurRepository(pool *pgxpool.Pool) *UtilisateurRepository {
	return &UtilisateurRepository{pool: pool}
}

func scanUtilisateur(row pgx.Row) (*entity.Utilisateur, error) {
	var u entity.Utilisateur
	err := row.Scan(&u.ID, &u.Username, &u.Prenom, &u.Nom, &u.Email,
		&u.PasswordHash, &u.IsStaff, &u.IsActive, &u.DateJoined)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmail retourne le compte, ou (nil, nil) si aucun ne correspond.
// La comparaison est insensible à la casse.
func (r *UtilisateurRepository) FindByEmail(ctx context.Context, email string) (*entity.Utilisateur, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+colonnesUtilisateur+` FROM utilisateurs WHERE LOWER(email) = LOWER($1)`,
		strings.TrimSpace(email))
	return scanUtilisateur(row)
}

// FindByID retourne le compte, ou (nil, nil) si l'identifiant est inconnu.
func (r *UtilisateurRepository) FindByID(ctx context.Context, id string) (*entity.Utilisateur, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	row := r.pool.QueryRow(ctx,
		`SELECT `+colonnesUtilisateur+` FROM utilisateurs WHERE id = $1`, uid)
	return scanUtilisateur(row)
}

// Create enregistre un nouveau compte. L'identifiant est généré s'il est nul.
func (r *UtilisateurRepository) Create(ctx context.Context, u *entity.Utilisateur) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO utilisateurs (id, username, prenom, nom, email, password_hash, is_staff, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Username, u.Prenom, u.Nom, strings.ToLower(strings.TrimSpace(u.Email)),
		u.PasswordHash, u.IsStaff, u.IsActive)
	return err
}
