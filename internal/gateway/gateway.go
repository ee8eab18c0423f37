// Package gateway is the only place that talks to the backend database.
// It does no caching and no retries; callers go through the cache.
package gateway

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/models"
)

type Drivers interface {
	List(ctx context.Context, f models.DriverFilter) ([]models.Driver, error)
	Recent(ctx context.Context, n int) ([]models.Driver, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.DriverStatus) (*models.Driver, error)
	Stats(ctx context.Context) (models.DriverStats, error)
}

type Enterprises interface {
	List(ctx context.Context, f models.EnterpriseFilter) ([]models.Enterprise, error)
	Recent(ctx context.Context, n int) ([]models.Enterprise, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Enterprise, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.EnterpriseStatus) (*models.Enterprise, error)
	Stats(ctx context.Context) (models.EnterpriseStats, error)
}

type Contacts interface {
	List(ctx context.Context, f models.ContactFilter) ([]models.Contact, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	UnreadCount(ctx context.Context) (int64, error)
}

type JobOffers interface {
	List(ctx context.Context, f models.JobOfferFilter) ([]models.JobOffer, error)
	Get(ctx context.Context, id uuid.UUID) (*models.JobOffer, error)
	Create(ctx context.Context, in models.JobOfferInput) (*models.JobOffer, error)
	Update(ctx context.Context, id uuid.UUID, p models.JobOfferPatch) (*models.JobOffer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ActiveCount(ctx context.Context) (int64, error)
}

type JobApplications interface {
	ListByJobOffer(ctx context.Context, offerID uuid.UUID) ([]models.JobApplication, error)
	Get(ctx context.Context, id uuid.UUID) (*models.JobApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.JobApplication, error)
}

type Surveys interface {
	List(ctx context.Context, q models.SurveyQuery) ([]models.Survey, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Survey, error)
}

type Admins interface {
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*models.AdminUser, error)
}

type Users interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	TouchSignIn(ctx context.Context, id uuid.UUID) error
}

// Set bundles every gateway the service needs.
type Set struct {
	Drivers         Drivers
	Enterprises     Enterprises
	Contacts        Contacts
	JobOffers       JobOffers
	JobApplications JobApplications
	Surveys         Surveys
	Admins          Admins
	Users           Users
}

// NewSet builds the gorm-backed gateways on one connection.
func NewSet(db *gorm.DB) Set {
	return Set{
		Drivers:         NewDriverGateway(db),
		Enterprises:     NewEnterpriseGateway(db),
		Contacts:        NewContactGateway(db),
		JobOffers:       NewJobOfferGateway(db),
		JobApplications: NewApplicationGateway(db),
		Surveys:         NewSurveyGateway(db),
		Admins:          NewAdminGateway(db),
		Users:           NewUserGateway(db),
	}
}

func wrap(op, resource string, id uuid.UUID, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(resource, id.String())
	}
	return apperr.Gateway(op, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchScope matches term as a case-insensitive substring of any column.
func searchScope(term string, cols ...string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if term == "" || len(cols) == 0 {
			return tx
		}
		pattern := "%" + likeEscaper.Replace(term) + "%"
		conds := make([]string, len(cols))
		args := make([]any, len(cols))
		for i, c := range cols {
			conds[i] = c + " ILIKE ?"
			args[i] = pattern
		}
		return tx.Where(strings.Join(conds, " OR "), args...)
	}
}

func newestFirst(tx *gorm.DB) *gorm.DB {
	return tx.Order("created_at DESC")
}

type statusCount struct {
	Status string
	N      int64
}

// countByStatus runs the single GROUP BY aggregation behind the stats cards.
func countByStatus(ctx context.Context, db *gorm.DB, model any) (map[string]int64, int64, error) {
	var rows []statusCount
	err := db.WithContext(ctx).Model(model).
		Select("status, count(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	counts, total := foldCounts(rows)
	return counts, total, nil
}

func foldCounts(rows []statusCount) (map[string]int64, int64) {
	out := make(map[string]int64, len(rows))
	var total int64
	for _, r := range rows {
		out[r.Status] += r.N
		total += r.N
	}
	return out, total
}
