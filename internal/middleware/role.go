package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/topronto/admin-backoffice/internal/auth"
)

// LoginPath is where the UI sends anyone the gate turns away.
const LoginPath = "/login"

// RequireAdmin lets only authenticated_admin sessions through. Every other
// gate state, including a still-initializing one, is rejected.
func RequireAdmin(gate *auth.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := gate.Resolve(c.UserContext(), TokenFromRequest(c))
		if !d.IsAdmin() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success":  false,
				"message":  "unauthorized",
				"state":    d.State,
				"redirect": LoginPath,
			})
		}
		setDecision(c, d)
		return c.Next()
	}
}
