package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/models"
	"github.com/topronto/admin-backoffice/internal/utils"
)

type fakeUsers struct {
	byEmail map[string]*models.User
}

func (f *fakeUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("user", "")
}

func (f *fakeUsers) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperr.NotFound("user", id.String())
}

func (f *fakeUsers) TouchSignIn(ctx context.Context, id uuid.UUID) error { return nil }

type fakeAdmins struct {
	mu     sync.Mutex
	active map[uuid.UUID]bool
	err    error
	calls  int
}

func (f *fakeAdmins) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*models.AdminUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.active[userID] {
		return &models.AdminUser{UserID: userID, Role: "admin", IsActive: true}, nil
	}
	return nil, apperr.NotFound("admin user", userID.String())
}

type fixture struct {
	svc    *Service
	gate   *Gate
	admins *fakeAdmins
	admin  *models.User
	staff  *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	hash, err := utils.HashPassword("correct horse")
	if err != nil {
		t.Fatal(err)
	}
	admin := &models.User{ID: uuid.New(), Email: "admin@topronto.pt", Password: hash, IsActive: true}
	staff := &models.User{ID: uuid.New(), Email: "staff@topronto.pt", Password: hash, IsActive: true}
	users := &fakeUsers{byEmail: map[string]*models.User{admin.Email: admin, staff.Email: staff}}
	admins := &fakeAdmins{active: map[uuid.UUID]bool{admin.ID: true}}

	svc := NewService(users, NewMemorySessionStore(), "test-secret", 60, nil)
	gate := NewGate(svc, admins, nil)
	t.Cleanup(gate.Close)
	return &fixture{svc: svc, gate: gate, admins: admins, admin: admin, staff: staff}
}

func TestSignInAndResolveAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.svc.SignInWithPassword(ctx, " Admin@Topronto.pt ", "correct horse")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if sess.AccessToken == "" {
		t.Fatalf("expected an access token")
	}

	d := f.gate.Resolve(ctx, sess.AccessToken)
	if !d.IsAdmin() || d.UserID != f.admin.ID {
		t.Fatalf("expected admin decision, got %+v", d)
	}
}

func TestSignInFailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, errWrongPassword := f.svc.SignInWithPassword(ctx, "admin@topronto.pt", "nope")
	_, errUnknownEmail := f.svc.SignInWithPassword(ctx, "ghost@topronto.pt", "nope")

	if !errors.Is(errWrongPassword, ErrInvalidCredentials) || !errors.Is(errUnknownEmail, ErrInvalidCredentials) {
		t.Fatalf("expected generic invalid credentials, got %v / %v", errWrongPassword, errUnknownEmail)
	}
}

func TestGateNeverAdminWithoutActiveAdminRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.svc.SignInWithPassword(ctx, "staff@topronto.pt", "correct horse")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if d := f.gate.Resolve(ctx, sess.AccessToken); d.State != StateAuthenticatedNonAdmin {
		t.Fatalf("expected non-admin, got %s", d.State)
	}
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if d := f.gate.Resolve(ctx, tok); d.State != StateUnauthenticated {
			t.Fatalf("%q: expected unauthenticated, got %s", tok, d.State)
		}
	}
}

func TestGateFailsClosedAndRetries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.admins.err = errors.New("connection reset")

	sess, err := f.svc.SignInWithPassword(ctx, "admin@topronto.pt", "correct horse")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if d := f.gate.Resolve(ctx, sess.AccessToken); d.IsAdmin() {
		t.Fatalf("lookup failure must not grant admin")
	}

	f.admins.mu.Lock()
	f.admins.err = nil
	f.admins.mu.Unlock()
	if d := f.gate.Resolve(ctx, sess.AccessToken); !d.IsAdmin() {
		t.Fatalf("failed lookups must not be memoized, got %+v", d)
	}
}

func TestGateMemoizesPerSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, _ := f.svc.SignInWithPassword(ctx, "admin@topronto.pt", "correct horse")
	before := f.admins.calls
	for i := 0; i < 3; i++ {
		f.gate.Resolve(ctx, sess.AccessToken)
	}
	if f.admins.calls != before {
		t.Fatalf("expected memoized decision, admin lookups went from %d to %d", before, f.admins.calls)
	}
}

func TestGateForgetsExpiredSessions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, _ := f.svc.SignInWithPassword(ctx, "admin@topronto.pt", "correct horse")
	f.gate.Resolve(ctx, first.AccessToken)

	f.gate.mu.Lock()
	_, remembered := f.gate.memo[first.ID]
	f.gate.mu.Unlock()
	if !remembered {
		t.Fatalf("decision for a live session must be memoized")
	}

	// a later sign-in happens after the first session has run out
	f.gate.now = func() time.Time { return first.ExpiresAt.Add(time.Second) }
	second, _ := f.svc.SignInWithPassword(ctx, "staff@topronto.pt", "correct horse")
	f.gate.Resolve(ctx, second.AccessToken)

	f.gate.mu.Lock()
	_, stillThere := f.gate.memo[first.ID]
	n := len(f.gate.memo)
	f.gate.mu.Unlock()
	if stillThere || n != 1 {
		t.Fatalf("expired session must be pruned, memo has %d entries (first present: %v)", n, stillThere)
	}
}

func TestSignOutRevokesImmediately(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, _ := f.svc.SignInWithPassword(ctx, "admin@topronto.pt", "correct horse")
	if !f.gate.Resolve(ctx, sess.AccessToken).IsAdmin() {
		t.Fatalf("expected admin before sign out")
	}

	var events []EventType
	unsub := f.svc.OnAuthStateChange(func(ev Event) { events = append(events, ev.Type) })
	defer unsub()

	if err := f.svc.SignOut(ctx, sess.AccessToken); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if d := f.gate.Resolve(ctx, sess.AccessToken); d.State != StateUnauthenticated {
		t.Fatalf("revoked token must be unauthenticated, got %s", d.State)
	}
	if len(events) != 1 || events[0] != EventSignedOut {
		t.Fatalf("unexpected events %v", events)
	}
}

func TestRefreshKeepsSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, _ := f.svc.SignInWithPassword(ctx, "admin@topronto.pt", "correct horse")
	refreshed, err := f.svc.Refresh(ctx, sess.AccessToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.ID != sess.ID {
		t.Fatalf("refresh must keep the session id")
	}
	if !f.gate.Resolve(ctx, refreshed.AccessToken).IsAdmin() {
		t.Fatalf("refreshed token must resolve to admin")
	}
	if _, err := f.svc.Refresh(ctx, "garbage"); !apperr.IsAuth(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
}
