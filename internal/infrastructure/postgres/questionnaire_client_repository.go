package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
)

const colonnesQuestionnaireClient = `
	entreprise_siren,
	logiciel_facturation, logiciel_facturation_nom,
	factures_format_electronique,
	logiciel_devis, logiciel_devis_nom,
	caisse_enregistreuse, caisse_enregistreuse_nom, caisse_certifiee,
	plateforme_agreee, plateforme_agreee_nom,
	gestion_future, aisance_outils,
	reception_factures_achats, reception_achats_autre,
	envoi_factures_ventes, envoi_ventes_autre,
	conservation_factures,
	accompagnement_souhaite, accompagnement_autre,
	commentaires,
	date_completion, date_modification,
	modifie_par_collaborateur, cookies_consent_date`

// QuestionnaireClientRepository dépôt PostgreSQL des questionnaires clients.
// Les choix multiples d'accompagnement sont stockés en jsonb.
type QuestionnaireClientRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionnaireClientRepository construit le dépôt.
func NewQuestionnaireClientRepository(pool *pgxpool.Pool) *QuestionnaireClientRepository {
	return &QuestionnaireClientRepository{pool: pool}
}

func scanQuestionnaireClient(row pgx.Row) (*entity.QuestionnaireClient, error) {
	var q entity.QuestionnaireClient
	var accompagnement []byte
	err := row.Scan(
		&q.EntrepriseSiren,
		&q.LogicielFacturation, &q.LogicielFacturationNom,
		&q.FacturesFormatElectronique,
		&q.LogicielDevis, &q.LogicielDevisNom,
		&q.CaisseEnregistreuse, &q.CaisseEnregistreuseNom, &q.CaisseCertifiee,
		&q.PlateformeAgreee, &q.PlateformeAgreeeNom,
		&q.GestionFuture, &q.AisanceOutils,
		&q.ReceptionFacturesAchats, &q.ReceptionAchatsAutre,
		&q.EnvoiFacturesVentes, &q.EnvoiVentesAutre,
		&q.ConservationFactures,
		&accompagnement, &q.AccompagnementAutre,
		&q.Commentaires,
		&q.DateCompletion, &q.DateModification,
		&q.ModifieParCollaborateur, &q.CookiesConsentDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(accompagnement) > 0 {
		if err := json.Unmarshal(accompagnement, &q.AccompagnementSouhaite); err != nil {
			return nil, err
		}
	}
	return &q, nil
}

// GetBySiren retourne le questionnaire, ou (nil, nil) s'il n'existe pas.
func (r *QuestionnaireClientRepository) GetBySiren(ctx context.Context, siren string) (*entity.QuestionnaireClient, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+colonnesQuestionnaireClient+` FROM questionnaires_client WHERE entreprise_siren = $1`,
		siren)
	return scanQuestionnaireClient(row)
}

// Upsert insère ou remplace intégralement les réponses. La date de complétion
// initiale est conservée lors d'un remplacement.
func (r *QuestionnaireClientRepository) Upsert(ctx context.Context, q *entity.QuestionnaireClient) error {
	accompagnement := q.AccompagnementSouhaite
	if accompagnement == nil {
		accompagnement = []string{}
	}
	accompagnementJSON, err := json.Marshal(accompagnement)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO questionnaires_client (
			entreprise_siren,
			logiciel_facturation, logiciel_facturation_nom,
			factures_format_electronique,
			logiciel_devis, logiciel_devis_nom,
			caisse_enregistreuse, caisse_enregistreuse_nom, caisse_certifiee,
			plateforme_agreee, plateforme_agreee_nom,
			gestion_future, aisance_outils,
			reception_factures_achats, reception_achats_autre,
			envoi_factures_ventes, envoi_ventes_autre,
			conservation_factures,
			accompagnement_souhaite, accompagnement_autre,
			commentaires
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (entreprise_siren) DO UPDATE SET
			logiciel_facturation = EXCLUDED.logiciel_facturation,
			logiciel_facturation_nom = EXCLUDED.logiciel_facturation_nom,
			factures_format_electronique = EXCLUDED.factures_format_electronique,
			logiciel_devis = EXCLUDED.logiciel_devis,
			logiciel_devis_nom = EXCLUDED.logiciel_devis_nom,
			caisse_enregistreuse = EXCLUDED.caisse_enregistreuse,
			caisse_enregistreuse_nom = EXCLUDED.caisse_enregistreuse_nom,
			caisse_certifiee = EXCLUDED.caisse_certifiee,
			plateforme_agreee = EXCLUDED.plateforme_agreee,
			plateforme_agreee_nom = EXCLUDED.plateforme_agreee_nom,
			gestion_future = EXCLUDED.gestion_future,
			aisance_outils = EXCLUDED.aisance_outils,
			reception_factures_achats = EXCLUDED.reception_factures_achats,
			reception_achats_autre = EXCLUDED.reception_achats_autre,
			envoi_factures_ventes = EXCLUDED.envoi_factures_ventes,
			envoi_ventes_autre = EXCLUDED.envoi_ventes_autre,
			conservation_factures = EXCLUDED.conservation_factures,
			accompagnement_souhaite = EXCLUDED.accompagnement_souhaite,
			accompagnement_autre = EXCLUDED.accompagnement_autre,
			commentaires = EXCLUDED.commentaires,
			date_modification = now()`,
		q.EntrepriseSiren,
		q.LogicielFacturation, q.LogicielFacturationNom,
		q.FacturesFormatElectronique,
		q.LogicielDevis, q.LogicielDevisNom,
		q.CaisseEnregistreuse, q.CaisseEnregistreuseNom, q.CaisseCertifiee,
		q.PlateformeAgreee, q.PlateformeAgreeeNom,
		q.GestionFuture, q.AisanceOutils,
		q.ReceptionFacturesAchats, q.ReceptionAchatsAutre,
		q.EnvoiFacturesVentes, q.EnvoiVentesAutre,
		q.ConservationFactures,
		accompagnementJSON, q.AccompagnementAutre,
		q.Commentaires,
	)
	return err
}

// listBySirens charge les questionnaires d'un lot d'entreprises, indexés par
// SIREN, pour l'assemblage des dossiers du tableau de bord et de l'export.
func (r *QuestionnaireClientRepository) listBySirens(ctx context.Context, sirens []string) (map[string]*entity.QuestionnaireClient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+colonnesQuestionnaireClient+` FROM questionnaires_client WHERE entreprise_siren = ANY($1)`,
		sirens)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parSiren := map[string]*entity.QuestionnaireClient{}
	for rows.Next() {
		q, err := scanQuestionnaireClient(rows)
		if err != nil {
			return nil, err
		}
		parSiren[q.EntrepriseSiren] = q
	}
	return parSiren, rows.Err()
}
