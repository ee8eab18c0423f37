package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/auth"
)

const decisionLocal = "auth.decision"

func setDecision(c *fiber.Ctx, d auth.Decision) {
	c.Locals(decisionLocal, d)
	c.Locals("userId", d.UserID.String())
	c.Locals("role", d.Role)
}

// DecisionFrom returns the gate decision stored by RequireAdmin.
func DecisionFrom(c *fiber.Ctx) (auth.Decision, bool) {
	d, ok := c.Locals(decisionLocal).(auth.Decision)
	return d, ok
}

func UserID(c *fiber.Ctx) uuid.UUID {
	d, _ := DecisionFrom(c)
	return d.UserID
}
