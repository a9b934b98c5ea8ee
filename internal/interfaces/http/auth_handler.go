package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/auth"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/dto"
)

// AuthHandler routes d'authentification des collaborateurs.
type AuthHandler struct {
	auth *auth.Usecase
}

// NewAuthHandler construit le handler.
func NewAuthHandler(auth *auth.Usecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login vérifie les identifiants et retourne un jeton Bearer.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "requête invalide"})
	}

	resp, err := h.auth.Login(c.Context(), req)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(resp)
}
