package intake

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/dto"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/repository"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/logger"
)

// Workflow pilote le parcours de collecte en deux étapes : identification de
// l'entreprise par SIREN, puis soumission du questionnaire sous couvert d'un
// jeton de session à durée de vie limitée.
type Workflow struct {
	recherche   RechercheSiren
	sessions    SessionStore
	entreprises repository.EntrepriseRepository
	qClients    repository.QuestionnaireClientRepository
	qCollabs    repository.QuestionnaireCollaborateurRepository
	sessionTTL  time.Duration
	log         *logger.Logger
}

// NewWorkflow construit le cas d'usage du parcours de collecte.
func NewWorkflow(
	recherche RechercheSiren,
	sessions SessionStore,
	entreprises repository.EntrepriseRepository,
	qClients repository.QuestionnaireClientRepository,
	qCollabs repository.QuestionnaireCollaborateurRepository,
	sessionTTL time.Duration,
	log *logger.Logger,
) *Workflow {
	return &Workflow{
		recherche:   recherche,
		sessions:    sessions,
		entreprises: entreprises,
		qClients:    qClients,
		qCollabs:    qCollabs,
		sessionTTL:  sessionTTL,
		log:         log,
	}
}

// Identifier vérifie le SIREN saisi et ouvre une session de saisie. Si un
// questionnaire du type demandé existe déjà pour cette entreprise, aucune
// session n'est ouverte : la réponse le signale pour que l'interface propose
// la consultation plutôt que la ressaisie.
func (w *Workflow) Identifier(ctx context.Context, typeQ TypeQuestionnaire, saisie string) (*dto.IdentificationResponse, error) {
	res, err := w.recherche.Rechercher(ctx, saisie)
	if err != nil {
		return nil, err
	}

	dejaComplete, err := w.questionnaireExiste(ctx, typeQ, res.Siren)
	if err != nil {
		return nil, err
	}
	if dejaComplete {
		return &dto.IdentificationResponse{
			Siren:         res.Siren,
			NomEntreprise: res.Nom,
			DejaComplete:  true,
		}, nil
	}

	token := uuid.NewString()
	sess := Session{Siren: res.Siren, NomEntreprise: res.Nom, Type: typeQ}
	if err := w.sessions.Save(ctx, token, sess, w.sessionTTL); err != nil {
		w.log.Error().Err(err).Str("siren", res.Siren).Msg("ouverture de session de saisie impossible")
		return nil, domain.ErrTechnique
	}

	w.log.Info().
		Str("siren", res.Siren).
		Str("type", string(typeQ)).
		Msg("session de saisie ouverte")

	return &dto.IdentificationResponse{
		Siren:         res.Siren,
		NomEntreprise: res.Nom,
		Token:         token,
	}, nil
}

func (w *Workflow) questionnaireExiste(ctx context.Context, typeQ TypeQuestionnaire, siren string) (bool, error) {
	e, err := w.entreprises.GetBySiren(ctx, siren)
	if err != nil {
		return false, err
	}
	if e == nil {
		return false, nil
	}
	switch typeQ {
	case TypeClient:
		q, err := w.qClients.GetBySiren(ctx, siren)
		return q != nil, err
	case TypeCollaborateur:
		q, err := w.qCollabs.GetBySiren(ctx, siren)
		return q != nil, err
	}
	return false, nil
}

// SoumettreClient enregistre un questionnaire client. La session doit avoir
// été ouverte pour le parcours client ; une soumission sur une entreprise qui
// possède déjà un questionnaire remplace intégralement les réponses. Le jeton
// est consommé à la première soumission réussie.
func (w *Workflow) SoumettreClient(ctx context.Context, form *dto.QuestionnaireClientForm) (*dto.SoumissionResponse, error) {
	sess, err := w.ouvrirSession(ctx, form.Token, TypeClient)
	if err != nil {
		return nil, err
	}

	e, err := w.entreprises.FindOrCreate(ctx, sess.Siren, sess.NomEntreprise)
	if err != nil {
		return nil, err
	}

	q := &entity.QuestionnaireClient{
		EntrepriseSiren:            e.Siren,
		LogicielFacturation:        form.LogicielFacturation,
		LogicielFacturationNom:     form.LogicielFacturationNom,
		FacturesFormatElectronique: form.FacturesFormatElectronique,
		LogicielDevis:              form.LogicielDevis,
		LogicielDevisNom:           form.LogicielDevisNom,
		CaisseEnregistreuse:        form.CaisseEnregistreuse,
		CaisseEnregistreuseNom:     form.CaisseEnregistreuseNom,
		CaisseCertifiee:            form.CaisseCertifiee,
		PlateformeAgreee:           form.PlateformeAgreee,
		PlateformeAgreeeNom:        form.PlateformeAgreeeNom,
		GestionFuture:              form.GestionFuture,
		AisanceOutils:              form.AisanceOutils,
		ReceptionFacturesAchats:    form.ReceptionFacturesAchats,
		ReceptionAchatsAutre:       form.ReceptionAchatsAutre,
		EnvoiFacturesVentes:        form.EnvoiFacturesVentes,
		EnvoiVentesAutre:           form.EnvoiVentesAutre,
		ConservationFactures:       form.ConservationFactures,
		AccompagnementSouhaite:     form.AccompagnementSouhaite,
		AccompagnementAutre:        form.AccompagnementAutre,
		Commentaires:               form.Commentaires,
	}
	if err := w.qClients.Upsert(ctx, q); err != nil {
		return nil, err
	}

	w.fermerSession(ctx, form.Token)
	w.log.Info().Str("siren", e.Siren).Msg("questionnaire client enregistré")

	return &dto.SoumissionResponse{
		Siren:   e.Siren,
		Message: "Questionnaire enregistré avec succès !",
	}, nil
}

// SoumettreCollaborateur enregistre un questionnaire collaborateur pour le
// compte du collaborateur authentifié.
func (w *Workflow) SoumettreCollaborateur(ctx context.Context, collaborateurID uuid.UUID, form *dto.QuestionnaireCollaborateurForm) (*dto.SoumissionResponse, error) {
	sess, err := w.ouvrirSession(ctx, form.Token, TypeCollaborateur)
	if err != nil {
		return nil, err
	}

	e, err := w.entreprises.FindOrCreate(ctx, sess.Siren, sess.NomEntreprise)
	if err != nil {
		return nil, err
	}

	q := &entity.QuestionnaireCollaborateur{
		EntrepriseSiren:             e.Siren,
		AssujettieTVA:               form.AssujettieTVA,
		CodeAPE:                     form.CodeAPE,
		ActivitePrecise:             form.ActivitePrecise,
		TailleEntreprise:            form.TailleEntreprise,
		RegimeTVA:                   form.RegimeTVA,
		ActiviteExonereeTVA:         form.ActiviteExonereeTVA,
		PlateformeAgreee:            form.PlateformeAgreee,
		PlateformeAgreeeNom:         form.PlateformeAgreeeNom,
		NbFacturesVentes:            form.NbFacturesVentes,
		NbClientsActifs:             form.NbClientsActifs,
		VenteBtoBDomestique:         form.VenteBtoBDomestique,
		VenteBtoBExport:             form.VenteBtoBExport,
		VenteBtoCFacture:            form.VenteBtoCFacture,
		VenteBtoCCaisse:             form.VenteBtoCCaisse,
		NbFacturesAchats:            form.NbFacturesAchats,
		NbFournisseursActifs:        form.NbFournisseursActifs,
		AchatBtoBDomestique:         form.AchatBtoBDomestique,
		AchatBtoBIntracommunautaire: form.AchatBtoBIntracommunautaire,
		AchatBtoBHorsUE:             form.AchatBtoBHorsUE,
		Commentaires:                form.Commentaires,
		CollaborateurID:             collaborateurID,
	}
	if err := w.qCollabs.Upsert(ctx, q); err != nil {
		return nil, err
	}

	w.fermerSession(ctx, form.Token)
	w.log.Info().
		Str("siren", e.Siren).
		Str("collaborateur_id", collaborateurID.String()).
		Msg("questionnaire collaborateur enregistré")

	return &dto.SoumissionResponse{
		Siren:   e.Siren,
		Message: "Questionnaire enregistré avec succès !",
	}, nil
}

// ouvrirSession retrouve la session du jeton et vérifie qu'elle correspond au
// parcours attendu. Jeton absent, expiré ou d'un autre parcours : la session
// est considérée expirée.
func (w *Workflow) ouvrirSession(ctx context.Context, token string, typeAttendu TypeQuestionnaire) (*Session, error) {
	if token == "" {
		return nil, domain.ErrSessionExpiree
	}
	sess, err := w.sessions.Find(ctx, token)
	if err != nil {
		w.log.Error().Err(err).Msg("lecture de la session de saisie impossible")
		return nil, domain.ErrTechnique
	}
	if sess == nil || sess.Type != typeAttendu {
		return nil, domain.ErrSessionExpiree
	}
	return sess, nil
}

// fermerSession consomme le jeton. Un échec n'est pas bloquant : la session
// expirera d'elle-même.
func (w *Workflow) fermerSession(ctx context.Context, token string) {
	if err := w.sessions.Delete(ctx, token); err != nil {
		w.log.Warn().Err(err).Msg("suppression de la session de saisie impossible")
	}
}
