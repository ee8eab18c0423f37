package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/topronto/admin-backoffice/internal/views"
)

type DashboardHandler struct {
	Dashboard *views.DashboardService
}

func NewDashboardHandler(svc *views.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: svc}
}

func (h *DashboardHandler) Routes(r fiber.Router) {
	r.Get("/dashboard", h.GetDashboard)
}

// GetDashboard returns the summary cards and the recent activity feed. Each
// card carries its own phase, so one failing query does not blank the page.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	return ok(c, h.Dashboard.Load(c.UserContext()))
}
