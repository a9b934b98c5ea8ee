package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/dto"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/intake"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/sirene"
)

// ClientHandler routes publiques du parcours client.
type ClientHandler struct {
	recherche *sirene.Recherche
	workflow  *intake.Workflow
}

// NewClientHandler construit le handler.
func NewClientHandler(recherche *sirene.Recherche, workflow *intake.Workflow) *ClientHandler {
	return &ClientHandler{recherche: recherche, workflow: workflow}
}

// Identification vérifie le SIREN saisi et ouvre la session de saisie du
// questionnaire client.
func (h *ClientHandler) Identification(c *fiber.Ctx) error {
	var req dto.IdentificationRequest
	_ = c.BodyParser(&req)

	resp, err := h.workflow.Identifier(c.Context(), intake.TypeClient, req.Siren)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(resp)
}

// ValidateSiren validation à la volée pendant la saisie du formulaire.
// Toujours en 200 : le résultat, succès ou échec, est affiché en ligne.
func (h *ClientHandler) ValidateSiren(c *fiber.Ctx) error {
	res, err := h.recherche.Rechercher(c.Context(), c.Query("siren"))
	if err != nil {
		return c.JSON(dto.ValidationSirenResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(dto.ValidationSirenResponse{Success: true, Siren: res.Siren, Nom: res.Nom})
}

// Questionnaire enregistre les réponses du questionnaire client.
func (h *ClientHandler) Questionnaire(c *fiber.Ctx) error {
	form := parseQuestionnaireClientForm(c.Request().PostArgs())

	resp, err := h.workflow.SoumettreClient(c.Context(), form)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(resp)
}
