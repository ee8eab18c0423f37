// Package cache is the process-wide query cache that sits between the admin
// views and the backend gateway.
//
// Entries are keyed by a stable serialization of (resource, filter params).
// An entry stays live until a mutation invalidates it; there is no time based
// expiry. Concurrent fetches of the same key share one loader call.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Loader produces the value for a key, normally by calling the gateway.
type Loader func(ctx context.Context) (any, error)

// Result is what a view renders from. Err is set when the last load failed;
// Value then still holds the previous successful value, if any.
type Result struct {
	Value     any
	Err       error
	Loading   bool
	Stale     bool
	UpdatedAt time.Time
}

// HasValue reports whether a successful load ever populated the entry.
func (r Result) HasValue() bool { return !r.UpdatedAt.IsZero() }

type entry struct {
	value     any
	err       error
	loading   bool
	stale     bool
	gen       uint64
	updatedAt time.Time
	usedAt    time.Time
	flights   int
}

func (e *entry) live() bool {
	return e != nil && !e.stale && e.err == nil && !e.updatedAt.IsZero()
}

func (e *entry) result() Result {
	if e == nil {
		return Result{Loading: true}
	}
	return Result{Value: e.value, Err: e.err, Loading: e.loading, Stale: e.stale, UpdatedAt: e.updatedAt}
}

// Store is safe for concurrent use. Create one per process; tests create their own.
type Store struct {
	mu        sync.Mutex
	entries   map[string]*entry
	group     singleflight.Group
	listeners []func(prefixes []string)
	now       func() time.Time
	log       *slog.Logger
}

func NewStore(log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		entries: make(map[string]*entry),
		now:     time.Now,
		log:     log,
	}
}

// Key builds the cache key for a resource and its filter params.
// url.Values.Encode sorts keys, so equal filters always give equal keys.
func Key(resource string, params url.Values) string {
	if len(params) == 0 {
		return resource
	}
	return resource + "?" + params.Encode()
}

// Fetch returns the live entry for key, or runs loader once for every caller
// waiting on the same key. The loader is detached from ctx: a caller that gives
// up early gets a Loading result and the late value is still stored.
func (s *Store) Fetch(ctx context.Context, key string, loader Loader) Result {
	s.mu.Lock()
	e := s.entries[key]
	if e.live() {
		e.usedAt = s.now()
		r := e.result()
		s.mu.Unlock()
		return r
	}
	if e == nil {
		e = &entry{}
		s.entries[key] = e
	}
	e.usedAt = s.now()
	e.loading = true
	gen := e.gen
	s.mu.Unlock()

	flight := fmt.Sprintf("%s#%d", key, gen)
	loadCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(flight, func() (any, error) {
		// Another flight for this generation may have finished between our
		// miss and DoChan.
		if v, ok := s.begin(key); ok {
			return v, nil
		}
		v, err := loader(loadCtx)
		s.store(key, gen, v, err)
		return v, err
	})

	select {
	case <-ch:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.entries[key].result()
	case <-ctx.Done():
		s.mu.Lock()
		defer s.mu.Unlock()
		r := s.entries[key].result()
		r.Loading = true
		return r
	}
}

// begin registers a running loader on key, unless the entry already became
// live, in which case its value is returned.
func (s *Store) begin(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries[key]
	if e == nil {
		e = &entry{usedAt: s.now()}
		s.entries[key] = e
	}
	if e.live() {
		e.loading = e.flights > 0
		return e.value, true
	}
	e.flights++
	e.loading = true
	return nil, false
}

func (s *Store) store(key string, gen uint64, v any, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entries[key]
	e.flights--
	e.loading = e.flights > 0
	if e.gen != gen {
		// Invalidated while loading: keep the value only if there is nothing
		// else to show, and never as a live entry.
		if err == nil && e.updatedAt.IsZero() {
			e.value = v
			e.updatedAt = s.now()
		}
		return
	}
	if err != nil {
		e.err = err
		s.log.Warn("cache load failed", "key", key, "error", err)
		return
	}
	e.value = v
	e.err = nil
	e.stale = false
	e.updatedAt = s.now()
}

// Peek returns the entry without loading. ok is false for unknown keys.
func (s *Store) Peek(key string) (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return Result{}, false
	}
	return e.result(), true
}

// OnInvalidate registers fn to be called after every Invalidate.
func (s *Store) OnInvalidate(fn func(prefixes []string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Invalidate marks every entry under one of prefixes as stale and notifies
// listeners. A prefix matches its own key and any key extending it with "?"
// or "/", so "drivers" covers "drivers?status=pending" and "drivers/{id}" but
// not "drivers-stats".
func (s *Store) Invalidate(prefixes ...string) {
	if len(prefixes) == 0 {
		return
	}
	n := s.apply(prefixes)
	s.log.Debug("cache invalidated", "prefixes", prefixes, "entries", n)

	s.mu.Lock()
	listeners := append([]func([]string){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(prefixes)
	}
}

// Apply invalidates without notifying listeners. Used for invalidations that
// arrive from another instance.
func (s *Store) Apply(prefixes ...string) {
	s.apply(prefixes)
}

func (s *Store) apply(prefixes []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for key, e := range s.entries {
		for _, p := range prefixes {
			if covers(p, key) {
				e.stale = true
				e.gen++
				n++
				break
			}
		}
	}
	return n
}

func covers(prefix, key string) bool {
	if !strings.HasPrefix(key, prefix) {
		return false
	}
	if len(key) == len(prefix) {
		return true
	}
	c := key[len(prefix)]
	return c == '?' || c == '/'
}

// Prune forgets entries that nobody fetched for idle and that are not
// loading. The next fetch of such a key loads it like a first visit.
func (s *Store) Prune(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-idle)
	n := 0
	for key, e := range s.entries {
		if !e.loading && e.usedAt.Before(cutoff) {
			delete(s.entries, key)
			n++
		}
	}
	return n
}

// RunJanitor prunes idle entries every interval until ctx ends. Filtered and
// searched lists each get their own key, so without it the map only grows.
func (s *Store) RunJanitor(ctx context.Context, every, idle time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Prune(idle); n > 0 {
				s.log.Debug("cache pruned", "entries", n, "remaining", s.Len())
			}
		}
	}
}

// Len is the number of tracked keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// FetchTyped is Fetch with the value asserted to T. A zero T is returned when
// the entry holds no value yet.
func FetchTyped[T any](ctx context.Context, s *Store, key string, load func(ctx context.Context) (T, error)) (T, Result) {
	r := s.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	v, _ := r.Value.(T)
	return v, r
}
