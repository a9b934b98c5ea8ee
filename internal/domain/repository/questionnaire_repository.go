package repository

import (
	"context"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/entity"
)

// QuestionnaireClientRepository accès aux questionnaires clients.
// GetBySiren retourne (nil, nil) si aucun questionnaire n'existe.
type QuestionnaireClientRepository interface {
	GetBySiren(ctx context.Context, siren string) (*entity.QuestionnaireClient, error)

	// Upsert insère le questionnaire ou remplace intégralement les réponses
	// existantes. La date de complétion initiale est conservée lors d'un
	// remplacement ; la date de modification est rafraîchie.
	Upsert(ctx context.Context, q *entity.QuestionnaireClient) error
}

// QuestionnaireCollaborateurRepository accès aux questionnaires remplis par
// les collaborateurs du cabinet.
type QuestionnaireCollaborateurRepository interface {
	GetBySiren(ctx context.Context, siren string) (*entity.QuestionnaireCollaborateur, error)
	Upsert(ctx context.Context, q *entity.QuestionnaireCollaborateur) error
}
