package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/dto"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain"
)

// repondreErreur traduit une erreur métier en réponse HTTP. Le message
// français de l'erreur est affichable tel quel par l'interface.
func repondreErreur(c *fiber.Ctx, err error) error {
	return c.Status(statutErreur(err)).JSON(dto.ErrorResponse{Error: err.Error()})
}

func statutErreur(err error) int {
	switch {
	case errors.Is(err, domain.ErrSirenRequis),
		errors.Is(err, domain.ErrSirenInvalide):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrEntrepriseNonTrouvee),
		errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrSessionExpiree),
		errors.Is(err, domain.ErrIdentifiantsInvalides),
		errors.Is(err, domain.ErrNonAutorise):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrConnexionINSEE):
		return fiber.StatusBadGateway
	case errors.Is(err, domain.ErrDelaiDepasse):
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusInternalServerError
	}
}
