package http

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers regroupe les handlers à router.
type Handlers struct {
	Auth          *AuthHandler
	Client        *ClientHandler
	Collaborateur *CollaborateurHandler
	Dashboard     *DashboardHandler
	Export        *ExportHandler
}

// SetupRoutes câble les routes de l'application. Le parcours client est
// public ; tout le reste exige un jeton de collaborateur.
func SetupRoutes(app *fiber.App, h Handlers, jwtSecret string) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	api.Post("/auth/login", h.Auth.Login)

	client := api.Group("/client")
	client.Post("/identification", h.Client.Identification)
	client.Get("/validate-siren", h.Client.ValidateSiren)
	client.Post("/questionnaire", h.Client.Questionnaire)

	prive := api.Group("", AuthMiddleware(jwtSecret))
	prive.Post("/collaborateur/identification", h.Collaborateur.Identification)
	prive.Post("/collaborateur/questionnaire", h.Collaborateur.Questionnaire)
	prive.Get("/dashboard", h.Dashboard.Afficher)
	prive.Get("/entreprises/:siren", h.Dashboard.Dossier)
	prive.Post("/entreprises/:siren/archiver", h.Dashboard.Archiver)
	prive.Get("/export/csv", h.Export.CSV)
}
