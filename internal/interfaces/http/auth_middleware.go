package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cabinet-mercier/questionnaires-fe/internal/domain"
	"github.com/cabinet-mercier/questionnaires-fe/pkg/jwt"
)

// clesLocals clés utilisées dans les locals Fiber par le middleware.
const (
	localClaims = "claims"
)

// AuthMiddleware protège les routes réservées aux collaborateurs. Le jeton
// est attendu dans l'en-tête Authorization au format Bearer ; les claims
// validés sont déposés dans les locals du contexte.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entete := c.Get(fiber.HeaderAuthorization)
		if entete == "" || !strings.HasPrefix(entete, "Bearer ") {
			return repondreErreur(c, domain.ErrNonAutorise)
		}

		claims, err := jwt.Parse(secret, strings.TrimPrefix(entete, "Bearer "))
		if err != nil {
			return repondreErreur(c, domain.ErrNonAutorise)
		}

		c.Locals(localClaims, claims)
		return c.Next()
	}
}

// claimsDepuisContexte récupère les claims déposés par AuthMiddleware.
func claimsDepuisContexte(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(localClaims).(*jwt.Claims)
	return claims
}
