package views

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/cache"
	"github.com/topronto/admin-backoffice/internal/contactlink"
	"github.com/topronto/admin-backoffice/internal/gateway"
	"github.com/topronto/admin-backoffice/internal/models"
	"github.com/topronto/admin-backoffice/internal/services/storage"
)

// ApplicationService serves the applications of one job offer. The backend
// list is cached per offer and filtered in memory.
type ApplicationService struct {
	gw     gateway.JobApplications
	store  *cache.Store
	mut    *Mutator
	bucket storage.Bucket
	log    *slog.Logger
}

func NewApplicationService(gw gateway.JobApplications, store *cache.Store, mut *Mutator, bucket storage.Bucket, log *slog.Logger) *ApplicationService {
	if log == nil {
		log = slog.Default()
	}
	return &ApplicationService{gw: gw, store: store, mut: mut, bucket: bucket, log: log}
}

func offerKey(offerID uuid.UUID) string {
	return cache.Key(KeyJobApplications, url.Values{"offer": {offerID.String()}})
}

func (s *ApplicationService) List(ctx context.Context, offerID uuid.UUID, f models.ApplicationFilter) State[models.JobApplication] {
	all, r := cache.FetchTyped(ctx, s.store, offerKey(offerID), func(ctx context.Context) ([]models.JobApplication, error) {
		return s.gw.ListByJobOffer(ctx, offerID)
	})
	st := stateFrom[models.JobApplication](r)
	if st.Phase == PhaseLoading {
		return st
	}

	items := f.Apply(all)
	st.Items = items
	st.Rows = make([]Row[models.JobApplication], len(items))
	for i, a := range items {
		st.Rows[i] = Row[models.JobApplication]{
			Record:  a,
			Actions: ApplicationActions(a),
			Busy:    s.mut.Busy(KeyJobApplications, a.ID),
		}
	}
	if st.Phase == PhaseLoaded && len(items) == 0 {
		st.Empty = EmptyNoMatches
		if len(all) == 0 {
			st.Empty = EmptyNoData
		}
	}
	return st
}

// ApplicationDetail adds the applicant's stored documents to the panel.
type ApplicationDetail struct {
	Detail[models.JobApplication]
	Documents []storage.Document `json:"documents"`
}

func (s *ApplicationService) Detail(ctx context.Context, id uuid.UUID) (*ApplicationDetail, error) {
	a, err := fetchRecord(ctx, s.store, KeyJobApplications, id, func(ctx context.Context) (*models.JobApplication, error) {
		return s.gw.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	out := &ApplicationDetail{
		Detail: Detail[models.JobApplication]{
			Record:  *a,
			Actions: ApplicationActions(*a),
			Links:   contactlink.ApplicationLinks(*a),
			Busy:    s.mut.Busy(KeyJobApplications, id),
			Drawer:  openDrawer(),
		},
	}
	for _, doc := range []struct{ kind, path string }{
		{"cv", a.CVPath()},
		{"id_card", a.IDCardPath()},
	} {
		d, err := storage.Resolve(ctx, s.bucket, doc.kind, doc.path)
		if err != nil {
			s.log.Warn("document unavailable", "application", id, "kind", doc.kind, "error", err)
		}
		out.Documents = append(out.Documents, d)
	}
	return out, nil
}

// SetStatus also refreshes the job offer list, whose application counts
// may change.
func (s *ApplicationService) SetStatus(ctx context.Context, id uuid.UUID, raw string) (*models.JobApplication, error) {
	status, err := models.ParseApplicationStatus(raw)
	if err != nil {
		return nil, err
	}
	return Mutate(ctx, s.mut, KeyJobApplications, id, func(ctx context.Context) (*models.JobApplication, error) {
		return s.gw.UpdateStatus(ctx, id, status)
	}, InvalidateApplicationStatus...)
}

func (s *ApplicationService) Export(ctx context.Context, offerID uuid.UUID, f models.ApplicationFilter) ([]models.JobApplication, error) {
	return exportItems(s.List(ctx, offerID, f))
}
