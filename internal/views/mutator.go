package views

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/cache"
)

// Mutator runs record mutations. At most one mutation per record is in
// flight; a second one is refused with apperr.ErrBusy. Success invalidates
// the given cache prefixes, failure leaves the cache untouched.
type Mutator struct {
	store *cache.Store
	log   *slog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewMutator(store *cache.Store, log *slog.Logger) *Mutator {
	if log == nil {
		log = slog.Default()
	}
	return &Mutator{store: store, log: log, inflight: make(map[string]struct{})}
}

func busyKey(resource string, id uuid.UUID) string {
	return resource + "/" + id.String()
}

func (m *Mutator) Busy(resource string, id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.inflight[busyKey(resource, id)]
	return ok
}

func (m *Mutator) acquire(k string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.inflight[k]; ok {
		return false
	}
	m.inflight[k] = struct{}{}
	return true
}

func (m *Mutator) release(k string) {
	m.mu.Lock()
	delete(m.inflight, k)
	m.mu.Unlock()
}

func (m *Mutator) Run(ctx context.Context, resource string, id uuid.UUID, fn func(ctx context.Context) error, invalidate ...string) error {
	k := busyKey(resource, id)
	if !m.acquire(k) {
		return apperr.ErrBusy
	}
	defer m.release(k)

	if err := fn(ctx); err != nil {
		m.log.Warn("mutation failed", "resource", resource, "id", id, "error", err)
		return err
	}
	m.store.Invalidate(invalidate...)
	return nil
}

// Mutate is Run for mutations that return the updated record.
func Mutate[T any](ctx context.Context, m *Mutator, resource string, id uuid.UUID, fn func(ctx context.Context) (T, error), invalidate ...string) (T, error) {
	var out T
	err := m.Run(ctx, resource, id, func(ctx context.Context) error {
		v, err := fn(ctx)
		out = v
		return err
	}, invalidate...)
	return out, err
}
