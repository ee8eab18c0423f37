package views

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/topronto/admin-backoffice/internal/cache"
	"github.com/topronto/admin-backoffice/internal/gateway"
	"github.com/topronto/admin-backoffice/internal/models"
)

const (
	recentPerKind = 5
	recentMax     = 10
)

// Activity is one line of the dashboard's recent activity feed.
type Activity struct {
	Type     string    `json:"type"`
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Status   string    `json:"status"`
	Date     time.Time `json:"date"`
}

type Dashboard struct {
	Drivers        Value[models.DriverStats]     `json:"drivers"`
	Enterprises    Value[models.EnterpriseStats] `json:"enterprises"`
	UnreadContacts Value[int64]                  `json:"unread_contacts"`
	ActiveJobs     Value[int64]                  `json:"active_job_offers"`
	Recent         Value[[]Activity]             `json:"recent_activity"`
}

type DashboardService struct {
	store       *cache.Store
	drivers     *DriverService
	enterprises *EnterpriseService
	contacts    *ContactService
	jobOffers   *JobOfferService
	driverGW    gateway.Drivers
	companyGW   gateway.Enterprises
}

func NewDashboardService(store *cache.Store, d *DriverService, e *EnterpriseService, c *ContactService, j *JobOfferService) *DashboardService {
	return &DashboardService{
		store:       store,
		drivers:     d,
		enterprises: e,
		contacts:    c,
		jobOffers:   j,
		driverGW:    d.gw,
		companyGW:   e.gw,
	}
}

// Load fetches every card concurrently; each one is cached under its own key
// and fails on its own.
func (s *DashboardService) Load(ctx context.Context) Dashboard {
	var (
		out         Dashboard
		drivers     Value[[]models.Driver]
		enterprises Value[[]models.Enterprise]
	)
	var g errgroup.Group
	g.Go(func() error { out.Drivers = s.drivers.Stats(ctx); return nil })
	g.Go(func() error { out.Enterprises = s.enterprises.Stats(ctx); return nil })
	g.Go(func() error { out.UnreadContacts = s.contacts.UnreadCount(ctx); return nil })
	g.Go(func() error { out.ActiveJobs = s.jobOffers.ActiveCount(ctx); return nil })
	g.Go(func() error {
		drivers = fetchValue(ctx, s.store, KeyRecentDrivers, func(ctx context.Context) ([]models.Driver, error) {
			return s.driverGW.Recent(ctx, recentPerKind)
		})
		return nil
	})
	g.Go(func() error {
		enterprises = fetchValue(ctx, s.store, KeyRecentEnterprises, func(ctx context.Context) ([]models.Enterprise, error) {
			return s.companyGW.Recent(ctx, recentPerKind)
		})
		return nil
	})
	_ = g.Wait()

	out.Recent = mergeRecent(drivers, enterprises)
	return out
}

// mergeRecent builds the feed from whatever each source has and reports the
// worse of the two phases, so a failed source is never shown as a quiet feed.
func mergeRecent(d Value[[]models.Driver], e Value[[]models.Enterprise]) Value[[]Activity] {
	out := Value[[]Activity]{
		Data:  recentActivity(d.Data, e.Data),
		Phase: PhaseLoaded,
		Stale: d.Stale || e.Stale,
	}
	switch {
	case d.Phase == PhaseError || e.Phase == PhaseError:
		out.Phase = PhaseError
		out.Error = d.Error
		if out.Error == "" {
			out.Error = e.Error
		}
	case d.Phase == PhaseLoading || e.Phase == PhaseLoading:
		out.Phase = PhaseLoading
	}
	if d.UpdatedAt != nil && e.UpdatedAt != nil {
		at := *d.UpdatedAt
		if e.UpdatedAt.Before(at) {
			at = *e.UpdatedAt
		}
		out.UpdatedAt = &at
	}
	return out
}

// recentActivity merges the newest drivers and enterprises, newest first.
func recentActivity(drivers []models.Driver, enterprises []models.Enterprise) []Activity {
	out := make([]Activity, 0, recentMax)
	for i, d := range drivers {
		if i == recentPerKind {
			break
		}
		out = append(out, Activity{
			Type:     "driver",
			ID:       d.ID.String(),
			Title:    d.FullName(),
			Subtitle: d.Email,
			Status:   string(d.Status),
			Date:     d.CreatedAt,
		})
	}
	for i, e := range enterprises {
		if i == recentPerKind {
			break
		}
		out = append(out, Activity{
			Type:     "enterprise",
			ID:       e.ID.String(),
			Title:    e.Name,
			Subtitle: e.ContactPerson,
			Status:   string(e.Status),
			Date:     e.CreatedAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > recentMax {
		out = out[:recentMax]
	}
	return out
}
