package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/export"
	"github.com/topronto/admin-backoffice/internal/models"
	"github.com/topronto/admin-backoffice/internal/views"
)

type JobOfferHandler struct {
	Offers       *views.JobOfferService
	Applications *views.ApplicationService
}

func NewJobOfferHandler(offers *views.JobOfferService, apps *views.ApplicationService) *JobOfferHandler {
	return &JobOfferHandler{Offers: offers, Applications: apps}
}

func (h *JobOfferHandler) Routes(r fiber.Router) {
	g := r.Group("/job-offers")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/active-count", h.ActiveCount)
	g.Get("/export", h.Export)
	g.Get("/:id", h.Get)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
	g.Get("/:id/applications", h.ListApplications)
	g.Get("/:id/applications/export", h.ExportApplications)

	a := r.Group("/job-applications")
	a.Get("/:id", h.GetApplication)
	a.Patch("/:id/status", h.UpdateApplicationStatus)
}

func jobOfferFilter(c *fiber.Ctx) (models.JobOfferFilter, error) {
	return models.NewJobOfferFilter(c.Query("active"), c.Query("search"))
}

func (h *JobOfferHandler) List(c *fiber.Ctx) error {
	f, err := jobOfferFilter(c)
	if err != nil {
		return err
	}
	return sendState(c, h.Offers.List(c.UserContext(), f))
}

func (h *JobOfferHandler) ActiveCount(c *fiber.Ctx) error {
	return sendValue(c, h.Offers.ActiveCount(c.UserContext()))
}

func (h *JobOfferHandler) Export(c *fiber.Ctx) error {
	f, err := jobOfferFilter(c)
	if err != nil {
		return err
	}
	rows, err := h.Offers.Export(c.UserContext(), f)
	if err != nil {
		return err
	}
	return sendExport(c, export.JobOffers, rows)
}

func (h *JobOfferHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	d, err := h.Offers.Detail(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, d)
}

func (h *JobOfferHandler) Create(c *fiber.Ctx) error {
	var in models.JobOfferInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Validation("body", "invalid body")
	}
	o, err := h.Offers.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "job offer created",
		"data":    o,
	})
}

// Update applies a partial patch; {"is_active": false} is the deactivate action.
func (h *JobOfferHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var p models.JobOfferPatch
	if err := c.BodyParser(&p); err != nil {
		return apperr.Validation("body", "invalid body")
	}
	o, err := h.Offers.Update(c.UserContext(), id, p)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "job offer updated",
		"data":    o,
	})
}

func (h *JobOfferHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.Offers.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "job offer deleted",
	})
}

func applicationFilter(c *fiber.Ctx) (models.ApplicationFilter, error) {
	return models.NewApplicationFilter(c.Query("status"), c.Query("search"))
}

func (h *JobOfferHandler) ListApplications(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	f, err := applicationFilter(c)
	if err != nil {
		return err
	}
	return sendState(c, h.Applications.List(c.UserContext(), id, f))
}

func (h *JobOfferHandler) ExportApplications(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	f, err := applicationFilter(c)
	if err != nil {
		return err
	}
	rows, err := h.Applications.Export(c.UserContext(), id, f)
	if err != nil {
		return err
	}
	return sendExport(c, export.Applications, rows)
}

func (h *JobOfferHandler) GetApplication(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	d, err := h.Applications.Detail(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, d)
}

func (h *JobOfferHandler) UpdateApplicationStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	status, err := parseStatus(c)
	if err != nil {
		return err
	}
	a, err := h.Applications.SetStatus(c.UserContext(), id, status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "status updated",
		"data":    a,
	})
}
