package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/gateway"
)

type State string

const (
	StateInitializing          State = "initializing"
	StateUnauthenticated       State = "unauthenticated"
	StateAuthenticatedNonAdmin State = "authenticated_non_admin"
	StateAuthenticatedAdmin    State = "authenticated_admin"
)

// Decision is the gate's verdict for one request.
type Decision struct {
	State     State     `json:"state"`
	SessionID string    `json:"-"`
	UserID    uuid.UUID `json:"user_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role,omitempty"`
}

func (d Decision) IsAdmin() bool { return d.State == StateAuthenticatedAdmin }

// memoEntry lives no longer than the session it was decided for, so sessions
// that simply expire do not stay in memory.
type memoEntry struct {
	decision Decision
	expires  time.Time
}

func (e memoEntry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

// Gate resolves tokens to decisions and remembers them per session. It
// subscribes to the provider and re-resolves on every auth event, so a
// sign-out is visible to the next request immediately.
type Gate struct {
	provider Provider
	admins   gateway.Admins
	log      *slog.Logger

	mu   sync.Mutex
	memo map[string]memoEntry
	now  func() time.Time

	unsubscribe func()
}

func NewGate(provider Provider, admins gateway.Admins, log *slog.Logger) *Gate {
	if log == nil {
		log = slog.Default()
	}
	g := &Gate{
		provider: provider,
		admins:   admins,
		log:      log,
		memo:     make(map[string]memoEntry),
		now:      time.Now,
	}
	g.unsubscribe = provider.OnAuthStateChange(g.onEvent)
	return g
}

// Close stops listening to auth events.
func (g *Gate) Close() {
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
}

func (g *Gate) onEvent(ev Event) {
	switch ev.Type {
	case EventSignedOut:
		g.forget(ev.SessionID)
	case EventSignedIn, EventTokenRefreshed:
		g.forget(ev.SessionID)
		if ev.Session != nil {
			g.decide(context.Background(), ev.Session)
		}
	}
}

func (g *Gate) forget(sessionID string) {
	g.mu.Lock()
	delete(g.memo, sessionID)
	g.mu.Unlock()
}

// Resolve never returns an error: every failure is a non-admin state.
func (g *Gate) Resolve(ctx context.Context, token string) Decision {
	if token == "" {
		return Decision{State: StateUnauthenticated}
	}
	sess, err := g.provider.GetSession(ctx, token)
	if err != nil {
		g.log.Warn("session lookup failed", "error", err)
		return Decision{State: StateUnauthenticated}
	}
	if sess == nil {
		return Decision{State: StateUnauthenticated}
	}

	g.mu.Lock()
	e, ok := g.memo[sess.ID]
	if ok && e.expired(g.now()) {
		delete(g.memo, sess.ID)
		ok = false
	}
	g.mu.Unlock()
	if ok {
		return e.decision
	}
	if ctx.Err() != nil {
		return Decision{State: StateInitializing, SessionID: sess.ID}
	}
	return g.decide(ctx, sess)
}

func (g *Gate) decide(ctx context.Context, sess *Session) Decision {
	d := Decision{
		State:     StateAuthenticatedNonAdmin,
		SessionID: sess.ID,
		UserID:    sess.UserID,
		Email:     sess.Email,
		Name:      sess.Name,
	}
	admin, err := g.admins.FindActiveByUserID(ctx, sess.UserID)
	switch {
	case err == nil:
		d.State = StateAuthenticatedAdmin
		d.Role = admin.Role
	case apperr.IsNotFound(err):
	default:
		// Fail closed and do not remember the failure, so the next request retries.
		g.log.Error("admin lookup failed", "user_id", sess.UserID, "error", err)
		return d
	}

	g.mu.Lock()
	g.pruneLocked(g.now())
	g.memo[sess.ID] = memoEntry{decision: d, expires: sess.ExpiresAt}
	g.mu.Unlock()
	return d
}

// pruneLocked drops decisions whose session has expired. It runs on every new
// decision, which is once per sign-in or refresh.
func (g *Gate) pruneLocked(now time.Time) {
	for id, e := range g.memo {
		if e.expired(now) {
			delete(g.memo, id)
		}
	}
}
