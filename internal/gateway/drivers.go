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

type DriverGateway struct {
	db *gorm.DB
}

func NewDriverGateway(db *gorm.DB) *DriverGateway {
	return &DriverGateway{db: db}
}

func (g *DriverGateway) listQuery(ctx context.Context, f models.DriverFilter) *gorm.DB {
	tx := g.db.WithContext(ctx).Model(&models.Driver{})
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	return tx.Scopes(searchScope(f.Search, "first_name", "last_name", "email"), newestFirst)
}

func (g *DriverGateway) List(ctx context.Context, f models.DriverFilter) ([]models.Driver, error) {
	var out []models.Driver
	if err := g.listQuery(ctx, f).Find(&out).Error; err != nil {
		return nil, apperr.Gateway("list drivers", err)
	}
	return out, nil
}

func (g *DriverGateway) Recent(ctx context.Context, n int) ([]models.Driver, error) {
	var out []models.Driver
	if err := g.db.WithContext(ctx).Scopes(newestFirst).Limit(n).Find(&out).Error; err != nil {
		return nil, apperr.Gateway("recent drivers", err)
	}
	return out, nil
}

func (g *DriverGateway) Get(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	var d models.Driver
	if err := g.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, wrap("get driver", "driver", id, err)
	}
	return &d, nil
}

func (g *DriverGateway) UpdateStatus(ctx context.Context, id uuid.UUID, status models.DriverStatus) (*models.Driver, error) {
	if !status.Valid() {
		return nil, apperr.Validation("status", "invalid driver status: "+string(status))
	}
	var d models.Driver
	res := g.db.WithContext(ctx).Model(&d).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, apperr.Gateway("update driver status", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("driver", id.String())
	}
	return &d, nil
}

func (g *DriverGateway) Stats(ctx context.Context) (models.DriverStats, error) {
	counts, total, err := countByStatus(ctx, g.db, &models.Driver{})
	if err != nil {
		return models.DriverStats{}, apperr.Gateway("driver stats", err)
	}
	return models.DriverStats{
		Total:    total,
		Pending:  counts[string(models.DriverPending)],
		Approved: counts[string(models.DriverApproved)],
		Rejected: counts[string(models.DriverRejected)],
	}, nil
}
