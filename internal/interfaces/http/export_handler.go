package http

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/cabinet-mercier/questionnaires-fe/internal/application/usecase"
)

// bomUTF8 en tête du fichier pour qu'Excel détecte l'encodage.
var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// ExportHandler téléchargement CSV, derrière AuthMiddleware.
type ExportHandler struct {
	export *usecase.Export
}

// NewExportHandler construit le handler.
func NewExportHandler(export *usecase.Export) *ExportHandler {
	return &ExportHandler{export: export}
}

// CSV exporte toutes les entreprises actives et leurs questionnaires,
// en valeurs séparées par des points-virgules.
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	lignes, err := h.export.Exporter(c.Context())
	if err != nil {
		return repondreErreur(c, err)
	}

	var buf bytes.Buffer
	buf.Write(bomUTF8)
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.WriteAll(lignes); err != nil {
		return repondreErreur(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", usecase.NomFichierExport))
	return c.Send(buf.Bytes())
}
