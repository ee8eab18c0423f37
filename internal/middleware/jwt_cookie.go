package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie carries the admin access token.
const SessionCookie = "tp_session"

// TokenFromRequest reads the session cookie, falling back to a Bearer header.
func TokenFromRequest(c *fiber.Ctx) string {
	if tok := strings.TrimSpace(c.Cookies(SessionCookie)); tok != "" {
		return tok
	}
	h := c.Get(fiber.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
