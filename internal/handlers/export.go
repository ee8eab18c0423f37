package handlers

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/export"
	"github.com/topronto/admin-backoffice/internal/views"
)

// sendExport writes rows as a download in the ?format= requested (csv by default).
func sendExport[T any](c *fiber.Ctx, t export.Table[T], rows []T) error {
	format := strings.ToLower(strings.TrimSpace(c.Query("format", "csv")))

	var buf bytes.Buffer
	var contentType string
	switch format {
	case "csv":
		if err := t.CSV(&buf, rows); err != nil {
			return err
		}
		contentType = export.ContentTypeCSV
	case "xlsx":
		if err := t.XLSX(&buf, rows); err != nil {
			return err
		}
		contentType = export.ContentTypeXLSX
	default:
		return apperr.Validation("format", "format must be csv or xlsx")
	}

	c.Attachment(t.FilenameFor(format))
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(buf.Bytes())
}

// sendState renders a list screen. A failed load still answers 200 when
// earlier rows are available, so the screen can keep showing them.
func sendState[T any](c *fiber.Ctx, st views.State[T]) error {
	if st.Phase == views.PhaseError && !st.HasData() {
		return st.Err()
	}
	return c.JSON(fiber.Map{
		"success": st.Phase != views.PhaseError,
		"data":    st,
	})
}

func sendValue[T any](c *fiber.Ctx, v views.Value[T]) error {
	return c.JSON(fiber.Map{
		"success": v.Phase != views.PhaseError,
		"data":    v,
	})
}

type statusReq struct {
	Status string `json:"status"`
}

func parseStatus(c *fiber.Ctx) (string, error) {
	var req statusReq
	if err := c.BodyParser(&req); err != nil {
		return "", apperr.Validation("body", "invalid body")
	}
	return req.Status, nil
}
