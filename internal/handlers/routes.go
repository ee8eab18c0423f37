package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/topronto/admin-backoffice/internal/auth"
	"github.com/topronto/admin-backoffice/internal/middleware"
)

// Router holds every handler of the API. Google and Realtime are optional.
type Router struct {
	Gate       *auth.Gate
	Limiter    middleware.Limiter
	LoginLimit int

	Auth        *AuthHandler
	Google      *GoogleOAuthHandler
	I18n        *I18nHandler
	Dashboard   *DashboardHandler
	Drivers     *DriverHandler
	Enterprises *EnterpriseHandler
	Contacts    *ContactHandler
	JobOffers   *JobOfferHandler
	Surveys     *SurveyHandler
	Realtime    *RealtimeHandler
}

func (r *Router) Mount(app *fiber.App) {
	api := app.Group("/api")

	// public
	r.Auth.Routes(api, r.Limiter, r.LoginLimit)
	if r.Google != nil {
		r.Google.Routes(api)
	}
	api.Get("/i18n", r.I18n.GetMessages)

	// admin only
	requireAdmin := middleware.RequireAdmin(r.Gate)
	admin := api.Group("/admin", requireAdmin)
	r.Dashboard.Routes(admin)
	r.Drivers.Routes(admin)
	r.Enterprises.Routes(admin)
	r.Contacts.Routes(admin)
	r.JobOffers.Routes(admin)
	r.Surveys.Routes(admin)

	if r.Realtime != nil {
		r.Realtime.Routes(app, requireAdmin)
	}
}
