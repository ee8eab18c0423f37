package views

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/models"
)

var errBackend = errors.New("backend unavailable")

type fakeDrivers struct {
	mu      sync.Mutex
	rows    []models.Driver
	fail    bool
	lists   atomic.Int32
	updates atomic.Int32
	block   chan struct{}
}

func (f *fakeDrivers) List(_ context.Context, filter models.DriverFilter) ([]models.Driver, error) {
	f.lists.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, apperr.Gateway("list drivers", errBackend)
	}
	out := []models.Driver{}
	for _, d := range f.rows {
		if filter.Match(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDrivers) Recent(_ context.Context, n int) ([]models.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, apperr.Gateway("recent drivers", errBackend)
	}
	if len(f.rows) < n {
		n = len(f.rows)
	}
	return append([]models.Driver(nil), f.rows[:n]...), nil
}

func (f *fakeDrivers) Get(_ context.Context, id uuid.UUID) (*models.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.rows {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, apperr.NotFound("driver", id.String())
}

func (f *fakeDrivers) UpdateStatus(_ context.Context, id uuid.UUID, s models.DriverStatus) (*models.Driver, error) {
	f.updates.Add(1)
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, apperr.Gateway("update driver", errBackend)
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Status = s
			d := f.rows[i]
			return &d, nil
		}
	}
	return nil, apperr.NotFound("driver", id.String())
}

func (f *fakeDrivers) Stats(_ context.Context) (models.DriverStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return models.DriverStats{}, apperr.Gateway("driver stats", errBackend)
	}
	st := models.DriverStats{Total: int64(len(f.rows))}
	for _, d := range f.rows {
		switch d.Status {
		case models.DriverPending:
			st.Pending++
		case models.DriverApproved:
			st.Approved++
		case models.DriverRejected:
			st.Rejected++
		}
	}
	return st, nil
}

// fakeEnterprises keeps rows as stored, legacy spellings included, and
// canonicalizes on read like the gorm gateway.
type fakeEnterprises struct {
	mu   sync.Mutex
	rows []models.Enterprise
}

func (f *fakeEnterprises) List(_ context.Context, filter models.EnterpriseFilter) ([]models.Enterprise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Enterprise{}
	for _, e := range f.rows {
		if filter.Match(e) {
			e.Status = e.Status.Canonical()
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnterprises) Recent(_ context.Context, n int) ([]models.Enterprise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.rows) < n {
		n = len(f.rows)
	}
	return append([]models.Enterprise(nil), f.rows[:n]...), nil
}

func (f *fakeEnterprises) Get(_ context.Context, id uuid.UUID) (*models.Enterprise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.rows {
		if e.ID == id {
			e.Status = e.Status.Canonical()
			return &e, nil
		}
	}
	return nil, apperr.NotFound("enterprise", id.String())
}

func (f *fakeEnterprises) UpdateStatus(_ context.Context, id uuid.UUID, s models.EnterpriseStatus) (*models.Enterprise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Status = s
			e := f.rows[i]
			return &e, nil
		}
	}
	return nil, apperr.NotFound("enterprise", id.String())
}

func (f *fakeEnterprises) Stats(context.Context) (models.EnterpriseStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return models.EnterpriseStats{Total: int64(len(f.rows))}, nil
}

type fakeContacts struct {
	rows   []models.Contact
	unread atomic.Int64
}

func (f *fakeContacts) List(_ context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	out := []models.Contact{}
	for _, c := range f.rows {
		if filter.Match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContacts) Get(_ context.Context, id uuid.UUID) (*models.Contact, error) {
	for _, c := range f.rows {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, apperr.NotFound("contact", id.String())
}

func (f *fakeContacts) MarkAsRead(_ context.Context, id uuid.UUID) (*models.Contact, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].IsRead = true
			f.unread.Add(-1)
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, apperr.NotFound("contact", id.String())
}

func (f *fakeContacts) UnreadCount(context.Context) (int64, error) { return f.unread.Load(), nil }

type fakeJobOffers struct {
	creates atomic.Int32
	active  atomic.Int64
}

func (f *fakeJobOffers) List(context.Context, models.JobOfferFilter) ([]models.JobOffer, error) {
	return []models.JobOffer{}, nil
}

func (f *fakeJobOffers) Get(_ context.Context, id uuid.UUID) (*models.JobOffer, error) {
	return nil, apperr.NotFound("job offer", id.String())
}

func (f *fakeJobOffers) Create(_ context.Context, in models.JobOfferInput) (*models.JobOffer, error) {
	f.creates.Add(1)
	f.active.Add(1)
	o := in.Model()
	o.ID = uuid.New()
	return &o, nil
}

func (f *fakeJobOffers) Update(_ context.Context, id uuid.UUID, p models.JobOfferPatch) (*models.JobOffer, error) {
	o := &models.JobOffer{ID: id, Title: "t"}
	if p.IsActive != nil {
		o.IsActive = *p.IsActive
	}
	return o, nil
}

func (f *fakeJobOffers) Delete(context.Context, uuid.UUID) error { return nil }

func (f *fakeJobOffers) ActiveCount(context.Context) (int64, error) { return f.active.Load(), nil }

type fakeApplications struct {
	rows []models.JobApplication
}

func (f *fakeApplications) ListByJobOffer(_ context.Context, offerID uuid.UUID) ([]models.JobApplication, error) {
	out := []models.JobApplication{}
	for _, a := range f.rows {
		if a.JobOfferID == offerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplications) Get(_ context.Context, id uuid.UUID) (*models.JobApplication, error) {
	for _, a := range f.rows {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, apperr.NotFound("job application", id.String())
}

func (f *fakeApplications) UpdateStatus(_ context.Context, id uuid.UUID, s models.ApplicationStatus) (*models.JobApplication, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Status = s
			a := f.rows[i]
			return &a, nil
		}
	}
	return nil, apperr.NotFound("job application", id.String())
}

type fakeSurveys struct {
	rows []models.Survey
}

func (f *fakeSurveys) List(_ context.Context, q models.SurveyQuery) ([]models.Survey, error) {
	if q.Offset >= len(f.rows) {
		return []models.Survey{}, nil
	}
	end := q.Offset + q.Limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	return f.rows[q.Offset:end], nil
}

func (f *fakeSurveys) Get(_ context.Context, id uuid.UUID) (*models.Survey, error) {
	for _, s := range f.rows {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, apperr.NotFound("survey", id.String())
}

// fakeBucket only knows the paths it was given.
type fakeBucket map[string]string

func (b fakeBucket) PublicURL(_ context.Context, path string) (string, error) {
	if u, ok := b[path]; ok {
		return u, nil
	}
	return "", apperr.NotFound("object", path)
}

func driver(first string, status models.DriverStatus, age time.Duration) models.Driver {
	return models.Driver{
		ID:        uuid.New(),
		FirstName: first,
		LastName:  "Silva",
		Email:     first + "@example.com",
		Phone:     "+351 912 345 678",
		Status:    status,
		CreatedAt: time.Now().Add(-age),
	}
}
