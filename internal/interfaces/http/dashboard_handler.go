package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/dto"
	"github.com/cabinet-mercier/questionnaires-fe/internal/application/usecase"
	"github.com/cabinet-mercier/questionnaires-fe/internal/domain/repository"
)

// DashboardHandler tableau de bord et dossiers, derrière AuthMiddleware.
type DashboardHandler struct {
	tableau  *usecase.TableauDeBord
	dossiers *usecase.Dossiers
}

// NewDashboardHandler construit le handler.
func NewDashboardHandler(tableau *usecase.TableauDeBord, dossiers *usecase.Dossiers) *DashboardHandler {
	return &DashboardHandler{tableau: tableau, dossiers: dossiers}
}

// Afficher retourne les statistiques et la liste filtrée des entreprises.
// Paramètres : search, filter, sort.
func (h *DashboardHandler) Afficher(c *fiber.Ctx) error {
	resp, err := h.tableau.Afficher(
		c.Context(),
		c.Query("search"),
		c.Query("filter", repository.FiltreTous),
		c.Query("sort", repository.TriParDefaut),
	)
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(resp)
}

// Dossier retourne le détail d'une entreprise et de ses questionnaires.
func (h *DashboardHandler) Dossier(c *fiber.Ctx) error {
	dossier, err := h.dossiers.Consulter(c.Context(), c.Params("siren"))
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(dossier)
}

// Archiver retire l'entreprise du tableau de bord (suppression logique).
func (h *DashboardHandler) Archiver(c *fiber.Ctx) error {
	e, err := h.dossiers.Archiver(c.Context(), c.Params("siren"))
	if err != nil {
		return repondreErreur(c, err)
	}
	return c.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("L'entreprise %s a été archivée.", e.NomEntreprise),
	})
}
