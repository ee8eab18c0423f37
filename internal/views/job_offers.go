package views

import (
	"context"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/cache"
	"github.com/topronto/admin-backoffice/internal/gateway"
	"github.com/topronto/admin-backoffice/internal/models"
)

type JobOfferService struct {
	gw    gateway.JobOffers
	store *cache.Store
	mut   *Mutator
	list  *ListView[models.JobOffer, models.JobOfferFilter]
}

func NewJobOfferService(gw gateway.JobOffers, store *cache.Store, mut *Mutator) *JobOfferService {
	return &JobOfferService{
		gw:    gw,
		store: store,
		mut:   mut,
		list: &ListView[models.JobOffer, models.JobOfferFilter]{
			Resource: KeyJobOffers,
			Store:    store,
			Mutator:  mut,
			Load:     gw.List,
			ID:       func(o models.JobOffer) uuid.UUID { return o.ID },
			Actions:  JobOfferActions,
		},
	}
}

func (s *JobOfferService) List(ctx context.Context, f models.JobOfferFilter) State[models.JobOffer] {
	return s.list.Render(ctx, f)
}

func (s *JobOfferService) ActiveCount(ctx context.Context) Value[int64] {
	return fetchValue(ctx, s.store, KeyJobOffersActive, s.gw.ActiveCount)
}

func (s *JobOfferService) Detail(ctx context.Context, id uuid.UUID) (*Detail[models.JobOffer], error) {
	o, err := fetchRecord(ctx, s.store, KeyJobOffers, id, func(ctx context.Context) (*models.JobOffer, error) {
		return s.gw.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &Detail[models.JobOffer]{
		Record:  *o,
		Actions: JobOfferActions(*o),
		Busy:    s.mut.Busy(KeyJobOffers, id),
		Drawer:  openDrawer(),
	}, nil
}

// Create validates the required fields before the backend sees the offer.
// A new record has no id yet, so it is not subject to busy tracking.
func (s *JobOfferService) Create(ctx context.Context, in models.JobOfferInput) (*models.JobOffer, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	o, err := s.gw.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.store.Invalidate(InvalidateJobOffer...)
	return o, nil
}

func (s *JobOfferService) Update(ctx context.Context, id uuid.UUID, p models.JobOfferPatch) (*models.JobOffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return Mutate(ctx, s.mut, KeyJobOffers, id, func(ctx context.Context) (*models.JobOffer, error) {
		return s.gw.Update(ctx, id, p)
	}, InvalidateJobOffer...)
}

// SetActive is the activate/deactivate row action.
func (s *JobOfferService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.JobOffer, error) {
	return s.Update(ctx, id, models.JobOfferPatch{IsActive: &active})
}

func (s *JobOfferService) Delete(ctx context.Context, id uuid.UUID) error {
	invalidate := append([]string{KeyJobApplications}, InvalidateJobOffer...)
	return s.mut.Run(ctx, KeyJobOffers, id, func(ctx context.Context) error {
		return s.gw.Delete(ctx, id)
	}, invalidate...)
}

func (s *JobOfferService) Export(ctx context.Context, f models.JobOfferFilter) ([]models.JobOffer, error) {
	return exportItems(s.list.Render(ctx, f))
}
