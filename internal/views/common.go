package views

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/cache"
	"github.com/topronto/admin-backoffice/internal/contactlink"
)

// ErrNotLoaded is returned when a caller gave up before the first load finished.
var ErrNotLoaded = errors.New("data is still loading")

// Value is a single cached figure such as a stats card or a badge count.
type Value[T any] struct {
	Data      T          `json:"data"`
	Phase     Phase      `json:"phase"`
	Error     string     `json:"error,omitempty"`
	Stale     bool       `json:"stale"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func fetchValue[T any](ctx context.Context, store *cache.Store, key string, load func(ctx context.Context) (T, error)) Value[T] {
	v, r := cache.FetchTyped(ctx, store, key, load)
	st := stateFrom[T](r)
	return Value[T]{Data: v, Phase: st.Phase, Error: st.Error, Stale: st.Stale, UpdatedAt: st.UpdatedAt}
}

// Detail is the side panel for one record.
type Detail[T any] struct {
	Record  T                  `json:"record"`
	Actions []Action           `json:"actions"`
	Links   []contactlink.Link `json:"links,omitempty"`
	Busy    bool               `json:"busy"`
	Drawer  DrawerState        `json:"drawer"`
}

func detailKey(resource string, id uuid.UUID) string {
	return resource + "/" + id.String()
}

// fetchRecord loads one record through the cache under "{resource}/{id}", so
// the list invalidations also cover open detail panels.
func fetchRecord[T any](ctx context.Context, store *cache.Store, resource string, id uuid.UUID, load func(ctx context.Context) (*T, error)) (*T, error) {
	v, r := cache.FetchTyped(ctx, store, detailKey(resource, id), load)
	if r.Err != nil {
		return nil, r.Err
	}
	if v == nil {
		return nil, ErrNotLoaded
	}
	return v, nil
}

// exportItems returns what the list currently shows, or why it cannot.
func exportItems[T any](st State[T]) ([]T, error) {
	switch {
	case st.HasData():
		return st.Items, nil
	case st.err != nil:
		return nil, st.err
	default:
		return nil, ErrNotLoaded
	}
}
