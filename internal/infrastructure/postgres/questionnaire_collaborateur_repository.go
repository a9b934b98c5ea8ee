package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
)

// Les lectures joignent l'utilisateur pour afficher qui a rempli le
// questionnaire sans second aller-retour.
const requeteQuestionnaireCollaborateur = `
	SELECT
		q.entreprise_siren,
		q.assujettie_tva, q.code_ape, q.activite_precise,
		q.taille_entreprise, q.regime_tva, q.activite_exoneree_tva,
		q.plateforme_agreee, q.plateforme_agreee_nom,
		q.nb_factures_ventes, q.nb_clients_actifs,
		q.vente_btob_domestique, q.vente_btob_export,
		q.vente_btoc_facture, q.vente_btoc_caisse,
		q.nb_factures_achats, q.nb_fournisseurs_actifs,
		q.achat_btob_domestique, q.achat_btob_intracommunautaire, q.achat_btob_hors_ue,
		q.commentaires,
		q.collaborateur_id,
		COALESCE(NULLIF(TRIM(u.prenom || ' ' || u.nom), ''), u.email, '') AS collaborateur_nom,
		q.date_completion, q.date_modification, q.cookies_consent_date
	FROM questionnaires_collaborateur q
	LEFT JOIN utilisateurs u ON u.id = q.collaborateur_id`

// QuestionnaireCollaborateurRepository dépôt PostgreSQL des questionnaires
// remplis par les collaborateurs.
type QuestionnaireCollaborateurRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionnaireCollaborateurRepository construit le dépôt.
func NewQuestionnaireCollaborateurRepository(pool *pgxpool.Pool) *QuestionnaireCollaborateurRepository {
	return &QuestionnaireCollaborateurRepository{pool: pool}
}

func scanQuestionnaireCollaborateur(row pgx.Row) (*entity.QuestionnaireCollaborateur, error) {
	var q entity.QuestionnaireCollaborateur
	err := row.Scan(
		&q.EntrepriseSiren,
		&q.AssujettieTVA, &q.CodeAPE, &q.ActivitePrecise,
		&q.TailleEntreprise, &q.RegimeTVA, &q.ActiviteExonereeTVA,
		&q.PlateformeAgreee, &q.PlateformeAgreeeNom,
		&q.NbFacturesVentes, &q.NbClientsActifs,
		&q.VenteBtoBDomestique, &q.VenteBtoBExport,
		&q.VenteBtoCFacture, &q.VenteBtoCCaisse,
		&q.NbFacturesAchats, &q.NbFournisseursActifs,
		&q.AchatBtoBDomestique, &q.AchatBtoBIntracommunautaire, &q.AchatBtoBHorsUE,
		&q.Commentaires,
		&q.CollaborateurID,
		&q.CollaborateurNom,
		&q.DateCompletion, &q.DateModification, &q.CookiesConsentDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// GetBySiren retourne le questionnaire, ou (nil, nil) s'il n'existe pas.
func (r *QuestionnaireCollaborateurRepository) GetBySiren(ctx context.Context, siren string) (*entity.QuestionnaireCollaborateur, error) {
	row := r.pool.QueryRow(ctx,
		requeteQuestionnaireCollaborateur+` WHERE q.entreprise_siren = $1`, siren)
	return scanQuestionnaireCollaborateur(row)
}

// Upsert insère ou remplace intégralement les réponses, y compris le
// collaborateur signataire. La date de complétion initiale est conservée.
func (r *QuestionnaireCollaborateurRepository) Upsert(ctx context.Context, q *entity.QuestionnaireCollaborateur) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO questionnaires_collaborateur (
			entreprise_siren,
			assujettie_tva, code_ape, activite_precise,
			taille_entreprise, regime_tva, activite_exoneree_tva,
			plateforme_agreee, plateforme_agreee_nom,
			nb_factures_ventes, nb_clients_actifs,
			vente_btob_domestique, vente_btob_export,
			vente_btoc_facture, vente_btoc_caisse,
			nb_factures_achats, nb_fournisseurs_actifs,
			achat_btob_domestique, achat_btob_intracommunautaire, achat_btob_hors_ue,
			commentaires,
			collaborateur_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (entreprise_siren) DO UPDATE SET
			assujettie_tva = EXCLUDED.assujettie_tva,
			code_ape = EXCLUDED.code_ape,
			activite_precise = EXCLUDED.activite_precise,
			taille_entreprise = EXCLUDED.taille_entreprise,
			regime_tva = EXCLUDED.regime_tva,
			activite_exoneree_tva = EXCLUDED.activite_exoneree_tva,
			plateforme_agreee = EXCLUDED.plateforme_agreee,
			plateforme_agreee_nom = EXCLUDED.plateforme_agreee_nom,
			nb_factures_ventes = EXCLUDED.nb_factures_ventes,
			nb_clients_actifs = EXCLUDED.nb_clients_actifs,
			vente_btob_domestique = EXCLUDED.vente_btob_domestique,
			vente_btob_export = EXCLUDED.vente_btob_export,
			vente_btoc_facture = EXCLUDED.vente_btoc_facture,
			vente_btoc_caisse = EXCLUDED.vente_btoc_caisse,
			nb_factures_achats = EXCLUDED.nb_factures_achats,
			nb_fournisseurs_actifs = EXCLUDED.nb_fournisseurs_actifs,
			achat_btob_domestique = EXCLUDED.achat_btob_domestique,
			achat_btob_intracommunautaire = EXCLUDED.achat_btob_intracommunautaire,
			achat_btob_hors_ue = EXCLUDED.achat_btob_hors_ue,
			commentaires = EXCLUDED.commentaires,
			collaborateur_id = EXCLUDED.collaborateur_id,
			date_modification = now()`,
		q.EntrepriseSiren,
		q.AssujettieTVA, q.CodeAPE, q.ActivitePrecise,
		q.TailleEntreprise, q.RegimeTVA, q.ActiviteExonereeTVA,
		q.PlateformeAgreee, q.PlateformeAgreeeNom,
		q.NbFacturesVentes, q.NbClientsActifs,
		q.VenteBtoBDomestique, q.VenteBtoBExport,
		q.VenteBtoCFacture, q.VenteBtoCCaisse,
		q.NbFacturesAchats, q.NbFournisseursActifs,
		q.AchatBtoBDomestique, q.AchatBtoBIntracommunautaire, q.AchatBtoBHorsUE,
		q.Commentaires,
		q.CollaborateurID,
	)
	return err
}

// listBySirens charge les questionnaires d'un lot d'entreprises, indexés par
// SIREN.
func (r *QuestionnaireCollaborateurRepository) listBySirens(ctx context.Context, sirens []string) (map[string]*entity.QuestionnaireCollaborateur, error) {
	rows, err := r.pool.Query(ctx,
		requeteQuestionnaireCollaborateur+` WHERE q.entreprise_siren = ANY($1)`, sirens)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parSiren := map[string]*entity.QuestionnaireCollaborateur{}
	for rows.Next() {
		q, err := scanQuestionnaireCollaborateur(rows)
		if err != nil {
			return nil, err
		}
		parSiren[q.EntrepriseSiren] = q
	}
	return parSiren, rows.Err()
}
