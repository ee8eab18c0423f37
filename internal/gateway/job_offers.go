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

type JobOfferGateway struct {
	db *gorm.DB
}

func NewJobOfferGateway(db *gorm.DB) *JobOfferGateway {
	return &JobOfferGateway{db: db}
}

func (g *JobOfferGateway) listQuery(ctx context.Context, f models.JobOfferFilter) *gorm.DB {
	tx := g.db.WithContext(ctx).Model(&models.JobOffer{})
	switch f.Active {
	case models.ActiveOnly:
		tx = tx.Where("is_active = ?", true)
	case models.InactiveOnly:
		tx = tx.Where("is_active = ?", false)
	}
	return tx.Scopes(searchScope(f.Search, "title", "location"), newestFirst)
}

func (g *JobOfferGateway) List(ctx context.Context, f models.JobOfferFilter) ([]models.JobOffer, error) {
	var out []models.JobOffer
	if err := g.listQuery(ctx, f).Find(&out).Error; err != nil {
		return nil, apperr.Gateway("list job offers", err)
	}
	return out, nil
}

func (g *JobOfferGateway) Get(ctx context.Context, id uuid.UUID) (*models.JobOffer, error) {
	var o models.JobOffer
	if err := g.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, wrap("get job offer", "job offer", id, err)
	}
	return &o, nil
}

// Create validates before touching the database.
func (g *JobOfferGateway) Create(ctx context.Context, in models.JobOfferInput) (*models.JobOffer, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	o := in.Model()
	o.ID = uuid.New()
	// Select("*") so an explicit is_active=false is not replaced by the column default.
	if err := g.db.WithContext(ctx).Select("*").Create(&o).Error; err != nil {
		return nil, apperr.Gateway("create job offer", err)
	}
	return &o, nil
}

func (g *JobOfferGateway) Update(ctx context.Context, id uuid.UUID, p models.JobOfferPatch) (*models.JobOffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return g.Get(ctx, id)
	}
	u := p.Updates()
	u["updated_at"] = time.Now()

	var o models.JobOffer
	res := g.db.WithContext(ctx).Model(&o).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(u)
	if res.Error != nil {
		return nil, apperr.Gateway("update job offer", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("job offer", id.String())
	}
	return &o, nil
}

func (g *JobOfferGateway) Delete(ctx context.Context, id uuid.UUID) error {
	res := g.db.WithContext(ctx).Where("id = ?", id).Delete(&models.JobOffer{})
	if res.Error != nil {
		return apperr.Gateway("delete job offer", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("job offer", id.String())
	}
	return nil
}

func (g *JobOfferGateway) ActiveCount(ctx context.Context) (int64, error) {
	var n int64
	err := g.db.WithContext(ctx).Model(&models.JobOffer{}).Where("is_active = ?", true).Count(&n).Error
	if err != nil {
		return 0, apperr.Gateway("count active job offers", err)
	}
	return n, nil
}
