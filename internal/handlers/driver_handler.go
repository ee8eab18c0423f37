package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/topronto/admin-backoffice/internal/export"
	"github.com/topronto/admin-backoffice/internal/models"
	"github.com/topronto/admin-backoffice/internal/views"
)

type DriverHandler struct {
	Drivers *views.DriverService
}

func NewDriverHandler(svc *views.DriverService) *DriverHandler {
	return &DriverHandler{Drivers: svc}
}

func (h *DriverHandler) Routes(r fiber.Router) {
	g := r.Group("/drivers")
	g.Get("/", h.List)
	g.Get("/stats", h.Stats)
	g.Get("/export", h.Export)
	g.Get("/:id", h.Get)
	g.Patch("/:id/status", h.UpdateStatus)
}

func driverFilter(c *fiber.Ctx) (models.DriverFilter, error) {
	return models.NewDriverFilter(c.Query("status"), c.Query("search"))
}

func (h *DriverHandler) List(c *fiber.Ctx) error {
	f, err := driverFilter(c)
	if err != nil {
		return err
	}
	return sendState(c, h.Drivers.List(c.UserContext(), f))
}

func (h *DriverHandler) Stats(c *fiber.Ctx) error {
	return sendValue(c, h.Drivers.Stats(c.UserContext()))
}

func (h *DriverHandler) Export(c *fiber.Ctx) error {
	f, err := driverFilter(c)
	if err != nil {
		return err
	}
	rows, err := h.Drivers.Export(c.UserContext(), f)
	if err != nil {
		return err
	}
	return sendExport(c, export.Drivers, rows)
}

func (h *DriverHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	d, err := h.Drivers.Detail(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, d)
}

// UpdateStatus handles approve and reject.
func (h *DriverHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	status, err := parseStatus(c)
	if err != nil {
		return err
	}
	d, err := h.Drivers.SetStatus(c.UserContext(), id, status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "status updated",
		"data":    d,
	})
}
