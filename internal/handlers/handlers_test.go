package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/auth"
	"github.com/topronto/admin-backoffice/internal/cache"
	"github.com/topronto/admin-backoffice/internal/middleware"
	"github.com/topronto/admin-backoffice/internal/models"
	"github.com/topronto/admin-backoffice/internal/utils"
	"github.com/topronto/admin-backoffice/internal/views"
)

type stubUsers struct{ byEmail map[string]*models.User }

func (s *stubUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := s.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("user", "")
}

func (s *stubUsers) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range s.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperr.NotFound("user", id.String())
}

func (s *stubUsers) TouchSignIn(context.Context, uuid.UUID) error { return nil }

type stubAdmins struct{ ids map[uuid.UUID]bool }

func (s *stubAdmins) FindActiveByUserID(_ context.Context, id uuid.UUID) (*models.AdminUser, error) {
	if s.ids[id] {
		return &models.AdminUser{UserID: id, Role: "admin", IsActive: true}, nil
	}
	return nil, apperr.NotFound("admin user", id.String())
}

type stubDrivers struct {
	mu   sync.Mutex
	rows []models.Driver
}

func (s *stubDrivers) List(_ context.Context, f models.DriverFilter) ([]models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Driver{}
	for _, d := range s.rows {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *stubDrivers) Recent(context.Context, int) ([]models.Driver, error) { return nil, nil }

func (s *stubDrivers) Get(_ context.Context, id uuid.UUID) (*models.Driver, error) {
	return nil, apperr.NotFound("driver", id.String())
}

func (s *stubDrivers) UpdateStatus(_ context.Context, id uuid.UUID, st models.DriverStatus) (*models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].Status = st
			d := s.rows[i]
			return &d, nil
		}
	}
	return nil, apperr.NotFound("driver", id.String())
}

func (s *stubDrivers) Stats(context.Context) (models.DriverStats, error) {
	return models.DriverStats{Total: int64(len(s.rows))}, nil
}

type stubEnterprises struct{}

func (stubEnterprises) List(context.Context, models.EnterpriseFilter) ([]models.Enterprise, error) {
	return []models.Enterprise{}, nil
}
func (stubEnterprises) Recent(context.Context, int) ([]models.Enterprise, error) { return nil, nil }
func (stubEnterprises) Get(_ context.Context, id uuid.UUID) (*models.Enterprise, error) {
	return nil, apperr.NotFound("enterprise", id.String())
}
func (stubEnterprises) UpdateStatus(_ context.Context, id uuid.UUID, s models.EnterpriseStatus) (*models.Enterprise, error) {
	return &models.Enterprise{ID: id, Status: s}, nil
}
func (stubEnterprises) Stats(context.Context) (models.EnterpriseStats, error) {
	return models.EnterpriseStats{}, nil
}

type stubContacts struct{}

func (stubContacts) List(context.Context, models.ContactFilter) ([]models.Contact, error) {
	return []models.Contact{}, nil
}
func (stubContacts) Get(_ context.Context, id uuid.UUID) (*models.Contact, error) {
	return nil, apperr.NotFound("contact", id.String())
}
func (stubContacts) MarkAsRead(_ context.Context, id uuid.UUID) (*models.Contact, error) {
	return nil, apperr.NotFound("contact", id.String())
}
func (stubContacts) UnreadCount(context.Context) (int64, error) { return 3, nil }

type stubJobOffers struct{ creates int }

func (s *stubJobOffers) List(context.Context, models.JobOfferFilter) ([]models.JobOffer, error) {
	return []models.JobOffer{}, nil
}
func (s *stubJobOffers) Get(_ context.Context, id uuid.UUID) (*models.JobOffer, error) {
	return nil, apperr.NotFound("job offer", id.String())
}
func (s *stubJobOffers) Create(_ context.Context, in models.JobOfferInput) (*models.JobOffer, error) {
	s.creates++
	o := in.Model()
	o.ID = uuid.New()
	return &o, nil
}
func (s *stubJobOffers) Update(_ context.Context, id uuid.UUID, _ models.JobOfferPatch) (*models.JobOffer, error) {
	return &models.JobOffer{ID: id}, nil
}
func (s *stubJobOffers) Delete(context.Context, uuid.UUID) error { return nil }
func (s *stubJobOffers) ActiveCount(context.Context) (int64, error) { return 0, nil }

type stubApplications struct{}

func (stubApplications) ListByJobOffer(context.Context, uuid.UUID) ([]models.JobApplication, error) {
	return []models.JobApplication{}, nil
}
func (stubApplications) Get(_ context.Context, id uuid.UUID) (*models.JobApplication, error) {
	return nil, apperr.NotFound("job application", id.String())
}
func (stubApplications) UpdateStatus(_ context.Context, id uuid.UUID, s models.ApplicationStatus) (*models.JobApplication, error) {
	return &models.JobApplication{ID: id, Status: s}, nil
}

type stubSurveys struct{}

func (stubSurveys) List(context.Context, models.SurveyQuery) ([]models.Survey, error) {
	return []models.Survey{}, nil
}
func (stubSurveys) Get(_ context.Context, id uuid.UUID) (*models.Survey, error) {
	return nil, apperr.NotFound("survey", id.String())
}

type emptyBucket struct{}

func (emptyBucket) PublicURL(_ context.Context, path string) (string, error) {
	return "", apperr.NotFound("object", path)
}

type testApp struct {
	app      *fiber.App
	drivers  *stubDrivers
	offers   *stubJobOffers
	pending  models.Driver
	password string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	const password = "  s3cret pass "
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}
	admin := &models.User{ID: uuid.New(), Email: "admin@topronto.pt", Password: hash, IsActive: true}
	staff := &models.User{ID: uuid.New(), Email: "staff@topronto.pt", Password: hash, IsActive: true}
	users := &stubUsers{byEmail: map[string]*models.User{admin.Email: admin, staff.Email: staff}}

	authSvc := auth.NewService(users, auth.NewMemorySessionStore(), "test-secret", 60, log)
	gate := auth.NewGate(authSvc, &stubAdmins{ids: map[uuid.UUID]bool{admin.ID: true}}, log)
	t.Cleanup(gate.Close)

	pending := models.Driver{ID: uuid.New(), FirstName: "Ana", LastName: "Costa", Email: "ana@example.com", Status: models.DriverPending, CreatedAt: time.Now()}
	drivers := &stubDrivers{rows: []models.Driver{pending}}
	offers := &stubJobOffers{}

	store := cache.NewStore(log)
	mut := views.NewMutator(store, log)
	driverSvc := views.NewDriverService(drivers, store, mut)
	enterpriseSvc := views.NewEnterpriseService(stubEnterprises{}, store, mut)
	contactSvc := views.NewContactService(stubContacts{}, store, mut)
	offerSvc := views.NewJobOfferService(offers, store, mut)

	authH := &AuthHandler{Auth: authSvc, Gate: gate, Expires: 60}
	router := &Router{
		Gate:        gate,
		Limiter:     middleware.NewMemoryLimiter(),
		LoginLimit:  100,
		Auth:        authH,
		I18n:        NewI18nHandler("en"),
		Dashboard:   NewDashboardHandler(views.NewDashboardService(store, driverSvc, enterpriseSvc, contactSvc, offerSvc)),
		Drivers:     NewDriverHandler(driverSvc),
		Enterprises: NewEnterpriseHandler(enterpriseSvc),
		Contacts:    NewContactHandler(contactSvc),
		JobOffers:   NewJobOfferHandler(offerSvc, views.NewApplicationService(stubApplications{}, store, mut, emptyBucket{}, log)),
		Surveys:     NewSurveyHandler(views.NewSurveyService(stubSurveys{}, store)),
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log)})
	router.Mount(app)
	return &testApp{app: app, drivers: drivers, offers: offers, pending: pending, password: password}
}

func (ta *testApp) do(t *testing.T, method, path, body, token string) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}
	resp, err := ta.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return resp, out
}

func (ta *testApp) login(t *testing.T, email string) (string, map[string]any) {
	t.Helper()
	resp, body := ta.do(t, http.MethodPost, "/api/auth/login", `{"email":"`+email+`","password":"`+ta.password+`"}`, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d %v", email, resp.StatusCode, body)
	}
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie {
			return c.Value, body
		}
	}
	t.Fatalf("no session cookie")
	return "", nil
}

func TestAdminRoutesRejectAnonymous(t *testing.T) {
	ta := newTestApp(t)
	resp, body := ta.do(t, http.MethodGet, "/api/admin/drivers", "", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if body["redirect"] != "/login" || body["state"] != "unauthenticated" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestLoginFailureIsGeneric(t *testing.T) {
	ta := newTestApp(t)
	for _, email := range []string{"admin@topronto.pt", "nobody@topronto.pt"} {
		resp, body := ta.do(t, http.MethodPost, "/api/auth/login", `{"email":"`+email+`","password":"wrong"}`, "")
		if resp.StatusCode != http.StatusUnauthorized || body["message"] != "invalid credentials" {
			t.Fatalf("%s: got %d %v", email, resp.StatusCode, body)
		}
	}
}

func TestLoginKeepsPasswordWhitespace(t *testing.T) {
	ta := newTestApp(t)
	ta.login(t, "admin@topronto.pt")

	trimmed := strings.TrimSpace(ta.password)
	resp, body := ta.do(t, http.MethodPost, "/api/auth/login", `{"email":"admin@topronto.pt","password":"`+trimmed+`"}`, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("trimmed password must not match, got %d %v", resp.StatusCode, body)
	}
}

type recordingLimiter struct {
	limit  int
	window time.Duration
}

func (l *recordingLimiter) Allow(_ string, limit int, window time.Duration) bool {
	l.limit, l.window = limit, window
	return false
}

func TestLoginIsRateLimitedPerMinute(t *testing.T) {
	lim := &recordingLimiter{}
	app := fiber.New()
	(&AuthHandler{}).Routes(app.Group("/api"), lim, 10)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.pt","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.StatusCode)
	}
	if lim.limit != 10 || lim.window != time.Minute {
		t.Fatalf("expected 10 attempts per minute, got %d per %s", lim.limit, lim.window)
	}
}

func TestLoginValidatesFields(t *testing.T) {
	ta := newTestApp(t)
	resp, body := ta.do(t, http.MethodPost, "/api/auth/login", `{"email":""}`, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	errs, _ := body["errors"].(map[string]any)
	if errs["email"] == nil || errs["password"] == nil {
		t.Fatalf("expected field errors, got %v", body)
	}
}

func TestNonAdminIsKeptOut(t *testing.T) {
	ta := newTestApp(t)
	token, body := ta.login(t, "staff@topronto.pt")
	data, _ := body["data"].(map[string]any)
	if data["state"] != string(auth.StateAuthenticatedNonAdmin) {
		t.Fatalf("unexpected login state %v", data)
	}
	resp, _ := ta.do(t, http.MethodGet, "/api/admin/dashboard", "", token)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("non-admin reached the dashboard: %d", resp.StatusCode)
	}
}

func TestApproveDriverFlow(t *testing.T) {
	ta := newTestApp(t)
	token, _ := ta.login(t, "admin@topronto.pt")
	id := ta.pending.ID.String()

	resp, body := ta.do(t, http.MethodPatch, "/api/admin/drivers/"+id+"/status", `{"status":"hired"}`, token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d %v", resp.StatusCode, body)
	}

	resp, _ = ta.do(t, http.MethodPatch, "/api/admin/drivers/"+id+"/status", `{"status":"approved"}`, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("approve: %d", resp.StatusCode)
	}

	resp, body = ta.do(t, http.MethodGet, "/api/admin/drivers?status=approved", "", token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: %d", resp.StatusCode)
	}
	data := body["data"].(map[string]any)
	rows := data["rows"].([]any)
	if len(rows) != 1 {
		t.Fatalf("expected the approved driver, got %v", data)
	}
}

func TestDriverExportFormats(t *testing.T) {
	ta := newTestApp(t)
	token, _ := ta.login(t, "admin@topronto.pt")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/drivers/export?format=csv", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	resp, err := ta.app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "chauffeurs.csv") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	raw, _ := io.ReadAll(resp.Body)
	if lines := strings.Split(strings.TrimSpace(string(raw)), "\n"); len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", raw)
	}

	resp, _ = ta.do(t, http.MethodGet, "/api/admin/drivers/export?format=pdf", "", token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown format, got %d", resp.StatusCode)
	}
}

func TestCreateJobOfferValidation(t *testing.T) {
	ta := newTestApp(t)
	token, _ := ta.login(t, "admin@topronto.pt")

	resp, body := ta.do(t, http.MethodPost, "/api/admin/job-offers", `{"title":"","description":"d","location":"Porto","employment_type":"full-time"}`, token)
	if resp.StatusCode != http.StatusBadRequest || ta.offers.creates != 0 {
		t.Fatalf("expected validation failure before the backend, got %d %v", resp.StatusCode, body)
	}

	resp, _ = ta.do(t, http.MethodPost, "/api/admin/job-offers", `{"title":"Motorista","description":"d","location":"Porto","employment_type":"full-time"}`, token)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
}

func TestNotFoundAndBadID(t *testing.T) {
	ta := newTestApp(t)
	token, _ := ta.login(t, "admin@topronto.pt")

	if resp, _ := ta.do(t, http.MethodGet, "/api/admin/contacts/"+uuid.NewString(), "", token); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if resp, _ := ta.do(t, http.MethodGet, "/api/admin/contacts/not-a-uuid", "", token); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	ta := newTestApp(t)
	token, _ := ta.login(t, "admin@topronto.pt")

	if resp, _ := ta.do(t, http.MethodGet, "/api/admin/contacts/unread-count", "", token); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 before logout, got %d", resp.StatusCode)
	}
	ta.do(t, http.MethodPost, "/api/auth/logout", "", token)
	if resp, _ := ta.do(t, http.MethodGet, "/api/admin/contacts/unread-count", "", token); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("revoked token still accepted: %d", resp.StatusCode)
	}
}

func TestI18nNegotiation(t *testing.T) {
	ta := newTestApp(t)
	resp, body := ta.do(t, http.MethodGet, "/api/i18n?lang=fr", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	data := body["data"].(map[string]any)
	if data["lang"] != "fr" || resp.Header.Get("Content-Language") != "fr" {
		t.Fatalf("unexpected language %v", data["lang"])
	}
}

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		apperr.Validation("x", "bad"):  http.StatusBadRequest,
		apperr.NotFound("driver", "1"): http.StatusNotFound,
		apperr.Auth("no"):              http.StatusUnauthorized,
		apperr.ErrBusy:                 http.StatusConflict,
		apperr.Gateway("list", io.EOF): http.StatusBadGateway,
		views.ErrNotLoaded:             http.StatusServiceUnavailable,
		fiber.ErrUpgradeRequired:       http.StatusUpgradeRequired,
	}
	for err, want := range cases {
		if got := statusFor(err); got != want {
			t.Fatalf("%v: expected %d, got %d", err, want, got)
		}
	}
}
