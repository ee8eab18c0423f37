package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/auth"
	"github.com/topronto/admin-backoffice/internal/gateway"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleOAuthHandler signs in existing principals with their Google account.
// Unknown emails are refused; no account is ever created here.
type GoogleOAuthHandler struct {
	Auth            *AuthHandler
	Users           gateway.Users
	GoogleClientID  string
	GoogleSecret    string
	GoogleRedirect  string
	FrontendBaseURL string
	Log             *slog.Logger

	// UserInfoURL is overridable for tests.
	UserInfoURL string
}

func (h *GoogleOAuthHandler) oauthCfg() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.GoogleClientID,
		ClientSecret: h.GoogleSecret,
		RedirectURL:  h.GoogleRedirect,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"openid", "email", "profile"},
	}
}

func randomState(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

func (h *GoogleOAuthHandler) tempCookie(c *fiber.Ctx, name, value string, maxAge int) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.Auth.SecureCookie,
		SameSite: "Lax",
		MaxAge:   maxAge,
	})
}

// safeNext keeps redirects on the frontend origin.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}

func (h *GoogleOAuthHandler) GoogleStart(c *fiber.Ctx) error {
	next := safeNext(c.Query("next", "/"))
	st := randomState(32)

	h.tempCookie(c, "oauth_state", st, 10*60)
	h.tempCookie(c, "oauth_next", next, 10*60)

	return c.Redirect(h.oauthCfg().AuthCodeURL(st), http.StatusTemporaryRedirect)
}

type googleUserInfo struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

func (h *GoogleOAuthHandler) fail(c *fiber.Ctx, msg string) error {
	u := h.FrontendBaseURL + "/login?err=" + url.QueryEscape(msg)
	return c.Redirect(u, http.StatusTemporaryRedirect)
}

func (h *GoogleOAuthHandler) GoogleCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		return apperr.Validation("state", "missing code or state")
	}

	stCookie := c.Cookies("oauth_state")
	next := safeNext(c.Cookies("oauth_next"))
	h.tempCookie(c, "oauth_state", "", -1)
	h.tempCookie(c, "oauth_next", "", -1)
	if stCookie == "" || stCookie != state {
		return apperr.Validation("state", "invalid state")
	}

	ctx := c.UserContext()
	tok, err := h.oauthCfg().Exchange(ctx, code)
	if err != nil {
		h.Log.Warn("google code exchange", "error", err)
		return h.fail(c, auth.ErrInvalidCredentials.Error())
	}

	infoURL := h.UserInfoURL
	if infoURL == "" {
		infoURL = googleUserInfoURL
	}
	resp, err := h.oauthCfg().Client(ctx, tok).Get(infoURL)
	if err != nil {
		return apperr.Gateway("google userinfo", err)
	}
	defer resp.Body.Close()

	var gu googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&gu); err != nil {
		return apperr.Gateway("decode google userinfo", err)
	}

	email := strings.ToLower(strings.TrimSpace(gu.Email))
	if email == "" || !gu.VerifiedEmail {
		return h.fail(c, auth.ErrInvalidCredentials.Error())
	}

	u, err := h.Users.FindByEmail(ctx, email)
	if apperr.IsNotFound(err) {
		return h.fail(c, auth.ErrInvalidCredentials.Error())
	}
	if err != nil {
		return err
	}

	sess, err := h.Auth.Auth.SignInWithUser(ctx, u.ID)
	if apperr.IsAuth(err) {
		return h.fail(c, auth.ErrInvalidCredentials.Error())
	}
	if err != nil {
		return err
	}
	h.Auth.setSessionCookie(c, sess.AccessToken)

	if d := h.Auth.Gate.Resolve(ctx, sess.AccessToken); !d.IsAdmin() {
		return h.fail(c, "access restricted to administrators")
	}
	return c.Redirect(h.FrontendBaseURL+next, http.StatusTemporaryRedirect)
}

func (h *GoogleOAuthHandler) Routes(r fiber.Router) {
	r.Get("/auth/google/start", h.GoogleStart)
	r.Get("/auth/google/callback", h.GoogleCallback)
}
