package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/auth"
	"github.com/topronto/admin-backoffice/internal/middleware"
)

const loginWindow = time.Minute

type AuthHandler struct {
	Auth         *auth.Service
	Gate         *auth.Gate
	Expires      int
	SecureCookie bool
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.SecureCookie,
		SameSite: "Lax",
		MaxAge:   h.Expires * 60,
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.SecureCookie,
		SameSite: "Lax",
	})
}

// sessionBody is what the UI needs to pick a screen after any auth call.
func sessionBody(sess *auth.Session, d auth.Decision) fiber.Map {
	body := fiber.Map{"state": d.State}
	if sess != nil {
		body["user"] = fiber.Map{
			"id":    sess.UserID,
			"email": sess.Email,
			"name":  sess.Name,
		}
		body["expires_at"] = sess.ExpiresAt
	}
	if d.IsAdmin() {
		body["role"] = d.Role
	} else {
		body["redirect"] = middleware.LoginPath
	}
	return body
}

// Login opens a session for any valid principal; whether it may use the
// admin screens is the gate's decision, returned in the body.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("body", "invalid body")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	// passwords are compared exactly as typed
	password := req.Password

	errs := apperr.FieldErrors{}
	if email == "" {
		errs.Add("email", "email is required")
	}
	if password == "" {
		errs.Add("password", "password is required")
	}
	if err := errs.Err(); err != nil {
		return err
	}

	sess, err := h.Auth.SignInWithPassword(c.UserContext(), email, password)
	if apperr.IsAuth(err) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": auth.ErrInvalidCredentials.Error(),
		})
	}
	if err != nil {
		return err
	}

	h.setSessionCookie(c, sess.AccessToken)
	d := h.Gate.Resolve(c.UserContext(), sess.AccessToken)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "signed in",
		"data":    sessionBody(sess, d),
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.Auth.SignOut(c.UserContext(), middleware.TokenFromRequest(c)); err != nil {
		return err
	}
	h.clearSessionCookie(c)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "signed out",
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	sess, err := h.Auth.Refresh(c.UserContext(), middleware.TokenFromRequest(c))
	if apperr.IsAuth(err) {
		h.clearSessionCookie(c)
	}
	if err != nil {
		return err
	}
	h.setSessionCookie(c, sess.AccessToken)
	return ok(c, sessionBody(sess, h.Gate.Resolve(c.UserContext(), sess.AccessToken)))
}

// Session reports the gate state for the current cookie. It never fails with
// 401 so the login screen can call it unconditionally.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	token := middleware.TokenFromRequest(c)
	sess, err := h.Auth.GetSession(c.UserContext(), token)
	if err != nil {
		return err
	}
	return ok(c, sessionBody(sess, h.Gate.Resolve(c.UserContext(), token)))
}

func (h *AuthHandler) Routes(r fiber.Router, limiter middleware.Limiter, loginLimit int) {
	g := r.Group("/auth")
	g.Post("/login", middleware.RateLimit(limiter, middleware.LoginKey, loginLimit, loginWindow), h.Login)
	g.Post("/logout", h.Logout)
	g.Post("/refresh", h.Refresh)
	g.Get("/session", h.Session)
}
