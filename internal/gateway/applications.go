package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/models"
)

type ApplicationGateway struct {
	db *gorm.DB
}

func NewApplicationGateway(db *gorm.DB) *ApplicationGateway {
	return &ApplicationGateway{db: db}
}

func (g *ApplicationGateway) ListByJobOffer(ctx context.Context, offerID uuid.UUID) ([]models.JobApplication, error) {
	var out []models.JobApplication
	err := g.db.WithContext(ctx).
		Where("job_offer_id = ?", offerID).
		Scopes(newestFirst).
		Find(&out).Error
	if err != nil {
		return nil, apperr.Gateway("list job applications", err)
	}
	return out, nil
}

func (g *ApplicationGateway) Get(ctx context.Context, id uuid.UUID) (*models.JobApplication, error) {
	var a models.JobApplication
	if err := g.db.WithContext(ctx).Preload("JobOffer").First(&a, "id = ?", id).Error; err != nil {
		return nil, wrap("get job application", "job application", id, err)
	}
	return &a, nil
}

func (g *ApplicationGateway) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.JobApplication, error) {
	if !status.Valid() {
		return nil, apperr.Validation("status", "invalid application status: "+string(status))
	}
	var a models.JobApplication
	res := g.db.WithContext(ctx).Model(&a).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, apperr.Gateway("update application status", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("job application", id.String())
	}
	return &a, nil
}
