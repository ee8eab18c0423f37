package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/topronto/admin-backoffice/internal/export"
	"github.com/topronto/admin-backoffice/internal/models"
	"github.com/topronto/admin-backoffice/internal/views"
)

type EnterpriseHandler struct {
	Enterprises *views.EnterpriseService
}

func NewEnterpriseHandler(svc *views.EnterpriseService) *EnterpriseHandler {
	return &EnterpriseHandler{Enterprises: svc}
}

func (h *EnterpriseHandler) Routes(r fiber.Router) {
	g := r.Group("/enterprises")
	g.Get("/", h.List)
	g.Get("/stats", h.Stats)
	g.Get("/export", h.Export)
	g.Get("/:id", h.Get)
	g.Patch("/:id/status", h.UpdateStatus)
}

func enterpriseFilter(c *fiber.Ctx) (models.EnterpriseFilter, error) {
	return models.NewEnterpriseFilter(c.Query("status"), c.Query("search"))
}

func (h *EnterpriseHandler) List(c *fiber.Ctx) error {
	f, err := enterpriseFilter(c)
	if err != nil {
		return err
	}
	return sendState(c, h.Enterprises.List(c.UserContext(), f))
}

func (h *EnterpriseHandler) Stats(c *fiber.Ctx) error {
	return sendValue(c, h.Enterprises.Stats(c.UserContext()))
}

func (h *EnterpriseHandler) Export(c *fiber.Ctx) error {
	f, err := enterpriseFilter(c)
	if err != nil {
		return err
	}
	rows, err := h.Enterprises.Export(c.UserContext(), f)
	if err != nil {
		return err
	}
	return sendExport(c, export.Enterprises, rows)
}

func (h *EnterpriseHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	e, err := h.Enterprises.Detail(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, e)
}

// UpdateStatus also accepts the legacy "client" and "inactive" spellings.
func (h *EnterpriseHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	status, err := parseStatus(c)
	if err != nil {
		return err
	}
	e, err := h.Enterprises.SetStatus(c.UserContext(), id, status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "status updated",
		"data":    e,
	})
}
