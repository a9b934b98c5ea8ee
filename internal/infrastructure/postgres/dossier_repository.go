package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/repository"
)

// Liste blanche des tris du tableau de bord. Toute autre valeur retombe sur
// le tri par défaut.
var trisAutorises = map[string]string{
	"siren":              "e.siren ASC",
	"-siren":             "e.siren DESC",
	"nom_entreprise":     "e.nom_entreprise ASC",
	"-nom_entreprise":    "e.nom_entreprise DESC",
	"date_creation":      "e.date_creation ASC",
	"-date_creation":     "e.date_creation DESC",
	"date_modification":  "e.date_modification ASC",
	"-date_modification": "e.date_modification DESC",
}

// DossierRepository assemble les dossiers entreprise + questionnaires. Les
// entreprises sont filtrées en SQL, puis les questionnaires du lot sont
// chargés en deux requêtes et recousus en mémoire.
type DossierRepository struct {
	pool     *pgxpool.Pool
	qClients *QuestionnaireClientRepository
	qCollabs *QuestionnaireCollaborateurRepository
}

// NewDossierRepository construit le dépôt au-dessus des dépôts de
// questionnaires.
func NewDossierRepository(pool *pgxpool.Pool, qClients *QuestionnaireClientRepository, qCollabs *QuestionnaireCollaborateurRepository) *DossierRepository {
	return &DossierRepository{pool: pool, qClients: qClients, qCollabs: qCollabs}
}

// Stats retourne les compteurs du tableau de bord en une requête.
func (r *DossierRepository) Stats(ctx context.Context) (*repository.StatistiquesTableau, error) {
	var s repository.StatistiquesTableau
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM entreprises WHERE NOT is_archived),
			(SELECT COUNT(*) FROM questionnaires_client),
			(SELECT COUNT(*) FROM questionnaires_collaborateur)`,
	).Scan(&s.TotalEntreprises, &s.QuestionnairesClient, &s.QuestionnairesCollaborateur)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Rechercher retourne les dossiers des entreprises actives selon les
// critères. La recherche attend un terme déjà normalisé (minuscules, sans
// accents) ; côté SQL, unaccent aligne les colonnes sur cette forme.
func (r *DossierRepository) Rechercher(ctx context.Context, c repository.CriteresDossiers) ([]entity.DossierEntreprise, error) {
	sql := `SELECT e.siren, e.nom_entreprise, e.date_creation, e.date_modification, e.is_archived
		FROM entreprises e
		WHERE NOT e.is_archived`
	var args []any

	if c.Recherche != "" {
		args = append(args, "%"+c.Recherche+"%")
		sql += ` AND (e.siren LIKE $1 OR unaccent(LOWER(e.nom_entreprise)) LIKE $1)`
	}

	switch c.Filtre {
	case repository.FiltreClientSeul:
		sql += clauseAvecClient + clauseSansCollaborateur
	case repository.FiltreCollaborateurSeul:
		sql += clauseSansClient + clauseAvecCollaborateur
	case repository.FiltreLesDeux:
		sql += clauseAvecClient + clauseAvecCollaborateur
	case repository.FiltreAucun:
		sql += clauseSansClient + clauseSansCollaborateur
	}

	tri, ok := trisAutorises[c.Tri]
	if !ok {
		tri = trisAutorises[repository.TriParDefaut]
	}
	sql += ` ORDER BY ` + tri

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entreprises []entity.Entreprise
	for rows.Next() {
		e, err := scanEntreprise(rows)
		if err != nil {
			return nil, err
		}
		entreprises = append(entreprises, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(entreprises) == 0 {
		return []entity.DossierEntreprise{}, nil
	}

	sirens := make([]string, len(entreprises))
	for i, e := range entreprises {
		sirens[i] = e.Siren
	}

	clients, err := r.qClients.listBySirens(ctx, sirens)
	if err != nil {
		return nil, err
	}
	collabs, err := r.qCollabs.listBySirens(ctx, sirens)
	if err != nil {
		return nil, err
	}

	dossiers := make([]entity.DossierEntreprise, len(entreprises))
	for i, e := range entreprises {
		dossiers[i] = entity.DossierEntreprise{
			Entreprise:                 e,
			QuestionnaireClient:        clients[e.Siren],
			QuestionnaireCollaborateur: collabs[e.Siren],
		}
	}
	return dossiers, nil
}

const (
	clauseAvecClient        = ` AND EXISTS (SELECT 1 FROM questionnaires_client qc WHERE qc.entreprise_siren = e.siren)`
	clauseSansClient        = ` AND NOT EXISTS (SELECT 1 FROM questionnaires_client qc WHERE qc.entreprise_siren = e.siren)`
	clauseAvecCollaborateur = ` AND EXISTS (SELECT 1 FROM questionnaires_collaborateur qo WHERE qo.entreprise_siren = e.siren)`
	clauseSansCollaborateur = ` AND NOT EXISTS (SELECT 1 FROM questionnaires_collaborateur qo WHERE qo.entreprise_siren = e.siren)`
)

// GetDossier retourne le dossier complet d'une entreprise, archivée ou non.
// (nil, nil) si l'entreprise n'existe pas.
func (r *DossierRepository) GetDossier(ctx context.Context, siren string) (*entity.DossierEntreprise, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+colonnesEntreprise+` FROM entreprises WHERE siren = $1`, siren)
	e, err := scanEntreprise(row)
	if err != nil || e == nil {
		return nil, err
	}

	qc, err := r.qClients.GetBySiren(ctx, siren)
	if err != nil {
		return nil, err
	}
	qco, err := r.qCollabs.GetBySiren(ctx, siren)
	if err != nil {
		return nil, err
	}

	return &entity.DossierEntreprise{
		Entreprise:                 *e,
		QuestionnaireClient:        qc,
		QuestionnaireCollaborateur: qco,
	}, nil
}
