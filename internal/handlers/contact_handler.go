package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/topronto/admin-backoffice/internal/export"
	"github.com/topronto/admin-backoffice/internal/models"
	"github.com/topronto/admin-backoffice/internal/views"
)

type ContactHandler struct {
	Contacts *views.ContactService
}

func NewContactHandler(svc *views.ContactService) *ContactHandler {
	return &ContactHandler{Contacts: svc}
}

func (h *ContactHandler) Routes(r fiber.Router) {
	g := r.Group("/contacts")
	g.Get("/", h.List)
	g.Get("/unread-count", h.UnreadCount)
	g.Get("/export", h.Export)
	g.Get("/:id", h.Get)
	g.Patch("/:id/read", h.MarkAsRead)
}

func contactFilter(c *fiber.Ctx) (models.ContactFilter, error) {
	return models.NewContactFilter(c.Query("read"), c.Query("search"))
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	f, err := contactFilter(c)
	if err != nil {
		return err
	}
	return sendState(c, h.Contacts.List(c.UserContext(), f))
}

func (h *ContactHandler) UnreadCount(c *fiber.Ctx) error {
	return sendValue(c, h.Contacts.UnreadCount(c.UserContext()))
}

func (h *ContactHandler) Export(c *fiber.Ctx) error {
	f, err := contactFilter(c)
	if err != nil {
		return err
	}
	rows, err := h.Contacts.Export(c.UserContext(), f)
	if err != nil {
		return err
	}
	return sendExport(c, export.Contacts, rows)
}

func (h *ContactHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	d, err := h.Contacts.Detail(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, d)
}

func (h *ContactHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	m, err := h.Contacts.MarkRead(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "marked as read",
		"data":    m,
	})
}
