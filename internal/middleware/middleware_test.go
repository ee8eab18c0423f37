package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/auth"
	"github.com/topronto/admin-backoffice/internal/models"
	"github.com/topronto/admin-backoffice/internal/utils"
)

type stubUsers struct{ u *models.User }

func (s stubUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == s.u.Email {
		return s.u, nil
	}
	return nil, apperr.NotFound("user", "")
}

func (s stubUsers) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.u, nil
}

func (s stubUsers) TouchSignIn(ctx context.Context, id uuid.UUID) error { return nil }

type stubAdmins struct{ admin uuid.UUID }

func (s stubAdmins) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*models.AdminUser, error) {
	if userID == s.admin {
		return &models.AdminUser{UserID: userID, Role: "admin", IsActive: true}, nil
	}
	return nil, apperr.NotFound("admin user", userID.String())
}

func newGate(t *testing.T, isAdmin bool) (*auth.Service, *auth.Gate) {
	t.Helper()
	hash, _ := utils.HashPassword("pw")
	u := &models.User{ID: uuid.New(), Email: "a@b.pt", Password: hash, IsActive: true}
	admins := stubAdmins{}
	if isAdmin {
		admins.admin = u.ID
	}
	svc := auth.NewService(stubUsers{u}, auth.NewMemorySessionStore(), "secret", 30, nil)
	return svc, auth.NewGate(svc, admins, nil)
}

func protectedApp(gate *auth.Gate) *fiber.App {
	app := fiber.New()
	app.Get("/admin", RequireAdmin(gate), func(c *fiber.Ctx) error {
		return c.SendString(UserID(c).String())
	})
	return app
}

func TestRequireAdminRejectsAnonymous(t *testing.T) {
	_, gate := newGate(t, true)
	resp, err := protectedApp(gate).Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body["redirect"] != "/login" {
		t.Fatalf("expected redirect to /login, got %v", body)
	}
}

func TestRequireAdminAcceptsCookieAndBearer(t *testing.T) {
	svc, gate := newGate(t, true)
	sess, err := svc.SignInWithPassword(context.Background(), "a@b.pt", "pw")
	if err != nil {
		t.Fatal(err)
	}
	app := protectedApp(gate)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sess.AccessToken})
	if resp, _ := app.Test(req); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("cookie: expected 200, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	if resp, _ := app.Test(req); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("bearer: expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	svc, gate := newGate(t, false)
	sess, _ := svc.SignInWithPassword(context.Background(), "a@b.pt", "pw")

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	resp, _ := protectedApp(gate).Test(req)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for non-admin, got %d", resp.StatusCode)
	}
}

func TestRateLimitBlocksAfterLimit(t *testing.T) {
	app := fiber.New()
	app.Post("/login", RateLimit(NewMemoryLimiter(), LoginKey, 2, time.Minute), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"A@b.pt"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		codes = append(codes, resp.StatusCode)
	}
	if codes[0] != 204 || codes[1] != 204 || codes[2] != fiber.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence %v", codes)
	}
}

func TestNilRedisLimiterAllows(t *testing.T) {
	var l *RedisLimiter
	if !l.Allow("k", 1, time.Second) {
		t.Fatalf("nil limiter must fail open")
	}
}
