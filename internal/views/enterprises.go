package views

import (
	"context"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/cache"
	"github.com/topronto/admin-backoffice/internal/contactlink"
	"github.com/topronto/admin-backoffice/internal/gateway"
	"github.com/topronto/admin-backoffice/internal/models"
)

type EnterpriseService struct {
	gw    gateway.Enterprises
	store *cache.Store
	mut   *Mutator
	list  *ListView[models.Enterprise, models.EnterpriseFilter]
}

func NewEnterpriseService(gw gateway.Enterprises, store *cache.Store, mut *Mutator) *EnterpriseService {
	return &EnterpriseService{
		gw:    gw,
		store: store,
		mut:   mut,
		list: &ListView[models.Enterprise, models.EnterpriseFilter]{
			Resource: KeyEnterprises,
			Store:    store,
			Mutator:  mut,
			Load:     gw.List,
			ID:       func(e models.Enterprise) uuid.UUID { return e.ID },
			Actions:  EnterpriseActions,
		},
	}
}

func (s *EnterpriseService) List(ctx context.Context, f models.EnterpriseFilter) State[models.Enterprise] {
	return s.list.Render(ctx, f)
}

func (s *EnterpriseService) Stats(ctx context.Context) Value[models.EnterpriseStats] {
	return fetchValue(ctx, s.store, KeyEnterprisesStats, s.gw.Stats)
}

func (s *EnterpriseService) Detail(ctx context.Context, id uuid.UUID) (*Detail[models.Enterprise], error) {
	e, err := fetchRecord(ctx, s.store, KeyEnterprises, id, func(ctx context.Context) (*models.Enterprise, error) {
		return s.gw.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &Detail[models.Enterprise]{
		Record:  *e,
		Actions: EnterpriseActions(*e),
		Links:   contactlink.PersonLinks(e.Email, e.Phone),
		Busy:    s.mut.Busy(KeyEnterprises, id),
		Drawer:  openDrawer(),
	}, nil
}

// SetStatus accepts the legacy spellings and stores the canonical status.
func (s *EnterpriseService) SetStatus(ctx context.Context, id uuid.UUID, raw string) (*models.Enterprise, error) {
	status, err := models.ParseEnterpriseStatus(raw)
	if err != nil {
		return nil, err
	}
	return Mutate(ctx, s.mut, KeyEnterprises, id, func(ctx context.Context) (*models.Enterprise, error) {
		return s.gw.UpdateStatus(ctx, id, status)
	}, InvalidateEnterpriseStatus...)
}

func (s *EnterpriseService) Export(ctx context.Context, f models.EnterpriseFilter) ([]models.Enterprise, error) {
	return exportItems(s.list.Render(ctx, f))
}
