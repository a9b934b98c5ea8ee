package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/dto"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/intake"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain"
)

// CollaborateurHandler routes du parcours collaborateur, derrière
// AuthMiddleware.
type CollaborateurHandler struct {
	workflow *intake.Workflow
}

// NewCollaborateurHandler construit le handler.
func NewCollaborateurHandler(workflow *intake.Workflow) *CollaborateurHandler {
	return &CollaborateurHandler{workflow: workflow}
}

// Identification vérifie le SIREN et ouvre la session de saisie du
// questionnaire collaborateur.
func (h *CollaborateurHandler) Identification(c *fiber.Ctx) error {
	var req dto.IdentificationRequest
	_ = c.BodyParser(&req)

	resp, err := h.workflow.Identifier(c.Context(), intake.TypeCollaborateur, req.Siren)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(resp)
}

// Questionnaire enregistre les réponses au nom du collaborateur connecté.
func (h *CollaborateurHandler) Questionnaire(c *fiber.Ctx) error {
	claims := claimsDepuisContexte(c)
	collaborateurID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return repondreErreur(c, domain.ErrNonAutorise)
	}

	form := parseQuestionnaireCollaborateurForm(c.Request().PostArgs())

	resp, err := h.workflow.SoumettreCollaborateur(c.Context(), collaborateurID, form)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(resp)
}
