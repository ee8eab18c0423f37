package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/topronto/admin-backoffice/internal/models"
	"github.com/topronto/admin-backoffice/internal/views"
)

type SurveyHandler struct {
	Surveys *views.SurveyService
}

func NewSurveyHandler(svc *views.SurveyService) *SurveyHandler {
	return &SurveyHandler{Surveys: svc}
}

func (h *SurveyHandler) Routes(r fiber.Router) {
	g := r.Group("/surveys")
	g.Get("/", h.List)
	g.Get("/:id", h.Get)
}

// List pages with ?limit= and ?offset=; filters are locale, duration
// (e.g. "2-5", ">=3") and a from/to date range.
func (h *SurveyHandler) List(c *fiber.Ctx) error {
	q, err := models.NewSurveyQuery(
		c.Query("locale"),
		c.Query("duration"),
		c.Query("from"),
		c.Query("to"),
		c.QueryInt("limit", models.SurveyPageSize),
		c.QueryInt("offset", 0),
	)
	if err != nil {
		return err
	}
	page := h.Surveys.List(c.UserContext(), q)
	if page.Phase == views.PhaseError && !page.HasData() {
		return page.Err()
	}
	return c.JSON(fiber.Map{
		"success": page.Phase != views.PhaseError,
		"data":    page,
	})
}

func (h *SurveyHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	d, err := h.Surveys.Detail(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, d)
}
