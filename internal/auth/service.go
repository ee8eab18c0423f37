// Package auth issues and verifies admin sessions and decides, per session,
// whether the caller may use the back-office.
package auth

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/gateway"
	"github.com/topronto/admin-backoffice/internal/models"
	"github.com/topronto/admin-backoffice/internal/utils"
)

type EventType string

const (
	EventSignedIn       EventType = "signed_in"
	EventSignedOut      EventType = "signed_out"
	EventTokenRefreshed EventType = "token_refreshed"
)

// Event is delivered synchronously to every subscriber. Session is nil for
// sign-out.
type Event struct {
	Type      EventType
	SessionID string
	Session   *Session
}

// Provider is the authentication collaborator the gate depends on.
type Provider interface {
	GetSession(ctx context.Context, token string) (*Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignInWithUser(ctx context.Context, userID uuid.UUID) (*Session, error)
	Refresh(ctx context.Context, token string) (*Session, error)
	SignOut(ctx context.Context, token string) error
	OnAuthStateChange(fn func(Event)) (unsubscribe func())
}

// ErrInvalidCredentials is the only sign-in failure callers ever see.
var ErrInvalidCredentials = apperr.Auth("invalid credentials")

type Service struct {
	users      gateway.Users
	sessions   SessionStore
	secret     string
	expiresMin int
	log        *slog.Logger

	mu     sync.Mutex
	subs   map[int]func(Event)
	nextID int
}

func NewService(users gateway.Users, sessions SessionStore, secret string, expiresMin int, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		users:      users,
		sessions:   sessions,
		secret:     secret,
		expiresMin: expiresMin,
		log:        log,
		subs:       make(map[int]func(Event)),
	}
}

func (s *Service) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.users.FindByEmail(ctx, email)
	if apperr.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !u.IsActive || !utils.CheckPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.open(ctx, u)
}

// SignInWithUser opens a session for an already authenticated principal
// (the Google callback).
func (s *Service) SignInWithUser(ctx context.Context, userID uuid.UUID) (*Session, error) {
	u, err := s.users.FindByID(ctx, userID)
	if apperr.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	return s.open(ctx, u)
}

func (s *Service) open(ctx context.Context, u *models.User) (*Session, error) {
	sess := Session{ID: uuid.NewString(), UserID: u.ID, Email: u.Email, Name: u.Name}
	if err := s.issue(ctx, &sess); err != nil {
		return nil, err
	}
	if err := s.users.TouchSignIn(ctx, u.ID); err != nil {
		s.log.Warn("record sign in", "user_id", u.ID, "error", err)
	}
	s.emit(Event{Type: EventSignedIn, SessionID: sess.ID, Session: &sess})
	return &sess, nil
}

// issue signs a fresh token for sess and stores the session.
func (s *Service) issue(ctx context.Context, sess *Session) error {
	token, exp, err := utils.SignJWT(s.secret, sess.UserID.String(), sess.ID, s.expiresMin)
	if err != nil {
		return apperr.Gateway("sign token", err)
	}
	sess.AccessToken = token
	sess.ExpiresAt = exp
	if err := s.sessions.Save(ctx, *sess); err != nil {
		return apperr.Gateway("save session", err)
	}
	return nil
}

// GetSession returns nil, nil for a missing, invalid, expired or revoked token.
func (s *Service) GetSession(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := utils.ParseJWT(s.secret, token)
	if err != nil {
		return nil, nil
	}
	sess, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, apperr.Gateway("load session", err)
	}
	if sess == nil || sess.UserID.String() != claims.UserID {
		return nil, nil
	}
	return sess, nil
}

func (s *Service) Refresh(ctx context.Context, token string) (*Session, error) {
	sess, err := s.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, apperr.Auth("no session")
	}
	if err := s.issue(ctx, sess); err != nil {
		return nil, err
	}
	s.emit(Event{Type: EventTokenRefreshed, SessionID: sess.ID, Session: sess})
	return sess, nil
}

// SignOut revokes the session. Signing out an unknown token is not an error.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := utils.ParseJWT(s.secret, token)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		return apperr.Gateway("delete session", err)
	}
	s.emit(Event{Type: EventSignedOut, SessionID: claims.SessionID})
	return nil
}

func (s *Service) OnAuthStateChange(fn func(Event)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Service) emit(ev Event) {
	s.mu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
