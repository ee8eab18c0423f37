// Package views turns cached gateway data into the state the admin screens
// render: list phases, empty kinds, per-row actions and busy flags, detail
// panels and the dashboard.
package views

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/cache"
)

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseError   Phase = "error"
)

// EmptyKind tells "nothing exists yet" apart from "filters hide everything".
type EmptyKind string

const (
	EmptyNone      EmptyKind = ""
	EmptyNoData    EmptyKind = "no_data"
	EmptyNoMatches EmptyKind = "no_matches"
)

type Action struct {
	Name    string `json:"name"`
	Target  string `json:"target,omitempty"`
	Enabled bool   `json:"enabled"`
}

type Row[T any] struct {
	Record  T        `json:"record"`
	Actions []Action `json:"actions"`
	Busy    bool     `json:"busy"`
}

// State is one render of a list screen.
type State[T any] struct {
	Phase     Phase      `json:"phase"`
	Rows      []Row[T]   `json:"rows"`
	Empty     EmptyKind  `json:"empty,omitempty"`
	Error     string     `json:"error,omitempty"`
	Stale     bool       `json:"stale"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// Items is the bare record list behind Rows, used by exports.
	Items []T `json:"-"`

	err error
}

// Err is the failure behind an error phase.
func (s State[T]) Err() error { return s.err }

// HasData reports whether Items came from a successful load.
func (s State[T]) HasData() bool { return s.UpdatedAt != nil }

// Filter is the cache-key side of a list filter.
type Filter interface {
	Params() url.Values
	IsZero() bool
}

// ListView is the generic list screen behind drivers, enterprises, contacts
// and job offers.
type ListView[T any, F Filter] struct {
	Resource string
	Store    *cache.Store
	Mutator  *Mutator
	Load     func(ctx context.Context, f F) ([]T, error)
	ID       func(T) uuid.UUID
	Actions  func(T) []Action
}

func (v *ListView[T, F]) fetch(ctx context.Context, f F) ([]T, cache.Result) {
	key := cache.Key(v.Resource, f.Params())
	return cache.FetchTyped(ctx, v.Store, key, func(ctx context.Context) ([]T, error) {
		return v.Load(ctx, f)
	})
}

// Render fetches through the cache and builds the screen state. Rows are kept
// when a reload fails so the last good data stays visible next to the error.
func (v *ListView[T, F]) Render(ctx context.Context, f F) State[T] {
	items, r := v.fetch(ctx, f)
	st := stateFrom[T](r)
	if st.Phase == PhaseLoading {
		return st
	}
	st.Items = items
	st.Rows = v.rows(items)

	if st.Phase == PhaseLoaded && len(items) == 0 {
		st.Empty = v.emptyKind(ctx, f)
	}
	return st
}

func (v *ListView[T, F]) emptyKind(ctx context.Context, f F) EmptyKind {
	if f.IsZero() {
		return EmptyNoData
	}
	var all F
	items, r := v.fetch(ctx, all)
	if r.Err == nil && r.HasValue() && len(items) == 0 {
		return EmptyNoData
	}
	return EmptyNoMatches
}

func (v *ListView[T, F]) rows(items []T) []Row[T] {
	out := make([]Row[T], len(items))
	for i, it := range items {
		out[i] = Row[T]{Record: it, Actions: v.Actions(it)}
		if v.Mutator != nil {
			out[i].Busy = v.Mutator.Busy(v.Resource, v.ID(it))
		}
	}
	return out
}

func stateFrom[T any](r cache.Result) State[T] {
	st := State[T]{Phase: PhaseLoaded, Stale: r.Stale, Rows: []Row[T]{}}
	if r.HasValue() {
		at := r.UpdatedAt
		st.UpdatedAt = &at
	}
	switch {
	case r.Err != nil:
		st.Phase = PhaseError
		st.Error = apperr.Public(r.Err)
		st.err = r.Err
	case r.Loading && !r.HasValue():
		st.Phase = PhaseLoading
	}
	return st
}
