package views

import (
	"context"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/cache"
	"github.com/topronto/admin-backoffice/internal/contactlink"
	"github.com/topronto/admin-backoffice/internal/gateway"
	"github.com/topronto/admin-backoffice/internal/models"
)

type DriverService struct {
	gw    gateway.Drivers
	store *cache.Store
	mut   *Mutator
	list  *ListView[models.Driver, models.DriverFilter]
}

func NewDriverService(gw gateway.Drivers, store *cache.Store, mut *Mutator) *DriverService {
	return &DriverService{
		gw:    gw,
		store: store,
		mut:   mut,
		list: &ListView[models.Driver, models.DriverFilter]{
			Resource: KeyDrivers,
			Store:    store,
			Mutator:  mut,
			Load:     gw.List,
			ID:       func(d models.Driver) uuid.UUID { return d.ID },
			Actions:  DriverActions,
		},
	}
}

func (s *DriverService) List(ctx context.Context, f models.DriverFilter) State[models.Driver] {
	return s.list.Render(ctx, f)
}

func (s *DriverService) Stats(ctx context.Context) Value[models.DriverStats] {
	return fetchValue(ctx, s.store, KeyDriversStats, s.gw.Stats)
}

func (s *DriverService) Detail(ctx context.Context, id uuid.UUID) (*Detail[models.Driver], error) {
	d, err := fetchRecord(ctx, s.store, KeyDrivers, id, func(ctx context.Context) (*models.Driver, error) {
		return s.gw.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &Detail[models.Driver]{
		Record:  *d,
		Actions: DriverActions(*d),
		Links:   contactlink.PersonLinks(d.Email, d.Phone),
		Busy:    s.mut.Busy(KeyDrivers, id),
		Drawer:  openDrawer(),
	}, nil
}

// SetStatus rejects an unknown status before any backend call.
func (s *DriverService) SetStatus(ctx context.Context, id uuid.UUID, raw string) (*models.Driver, error) {
	status, err := models.ParseDriverStatus(raw)
	if err != nil {
		return nil, err
	}
	return Mutate(ctx, s.mut, KeyDrivers, id, func(ctx context.Context) (*models.Driver, error) {
		return s.gw.UpdateStatus(ctx, id, status)
	}, InvalidateDriverStatus...)
}

// Export returns the rows the filtered list currently shows.
func (s *DriverService) Export(ctx context.Context, f models.DriverFilter) ([]models.Driver, error) {
	return exportItems(s.list.Render(ctx, f))
}
