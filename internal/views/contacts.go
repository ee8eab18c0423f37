package views

import (
	"context"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/cache"
	"github.com/topronto/admin-backoffice/internal/contactlink"
	"github.com/topronto/admin-backoffice/internal/gateway"
	"github.com/topronto/admin-backoffice/internal/models"
)

type ContactService struct {
	gw    gateway.Contacts
	store *cache.Store
	mut   *Mutator
	list  *ListView[models.Contact, models.ContactFilter]
}

func NewContactService(gw gateway.Contacts, store *cache.Store, mut *Mutator) *ContactService {
	return &ContactService{
		gw:    gw,
		store: store,
		mut:   mut,
		list: &ListView[models.Contact, models.ContactFilter]{
			Resource: KeyContacts,
			Store:    store,
			Mutator:  mut,
			Load:     gw.List,
			ID:       func(c models.Contact) uuid.UUID { return c.ID },
			Actions:  ContactActions,
		},
	}
}

func (s *ContactService) List(ctx context.Context, f models.ContactFilter) State[models.Contact] {
	return s.list.Render(ctx, f)
}

// UnreadCount feeds the sidebar badge.
func (s *ContactService) UnreadCount(ctx context.Context) Value[int64] {
	return fetchValue(ctx, s.store, KeyContactsUnread, s.gw.UnreadCount)
}

func (s *ContactService) Detail(ctx context.Context, id uuid.UUID) (*Detail[models.Contact], error) {
	c, err := fetchRecord(ctx, s.store, KeyContacts, id, func(ctx context.Context) (*models.Contact, error) {
		return s.gw.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &Detail[models.Contact]{
		Record:  *c,
		Actions: ContactActions(*c),
		Links:   contactlink.ContactLinks(*c),
		Busy:    s.mut.Busy(KeyContacts, id),
		Drawer:  openDrawer(),
	}, nil
}

// MarkRead is idempotent; an already read message is written again and
// the cache is still refreshed.
func (s *ContactService) MarkRead(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	return Mutate(ctx, s.mut, KeyContacts, id, func(ctx context.Context) (*models.Contact, error) {
		return s.gw.MarkAsRead(ctx, id)
	}, InvalidateContactRead...)
}

func (s *ContactService) Export(ctx context.Context, f models.ContactFilter) ([]models.Contact, error) {
	return exportItems(s.list.Render(ctx, f))
}
