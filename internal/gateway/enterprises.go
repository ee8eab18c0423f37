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

type EnterpriseGateway struct {
	db *gorm.DB
}

func NewEnterpriseGateway(db *gorm.DB) *EnterpriseGateway {
	return &EnterpriseGateway{db: db}
}

// legacyStatuses lists the stored spellings that map onto each canonical status.
func legacyStatuses(s models.EnterpriseStatus) []string {
	switch s {
	case models.EnterpriseConverted:
		return []string{string(s), "client"}
	case models.EnterpriseRejected:
		return []string{string(s), "inactive"}
	}
	return []string{string(s)}
}

func (g *EnterpriseGateway) listQuery(ctx context.Context, f models.EnterpriseFilter) *gorm.DB {
	tx := g.db.WithContext(ctx).Model(&models.Enterprise{})
	if f.Status != "" {
		tx = tx.Where("status IN ?", legacyStatuses(f.Status))
	}
	return tx.Scopes(searchScope(f.Search, "name", "contact_person", "email"), newestFirst)
}

func (g *EnterpriseGateway) List(ctx context.Context, f models.EnterpriseFilter) ([]models.Enterprise, error) {
	var out []models.Enterprise
	if err := g.listQuery(ctx, f).Find(&out).Error; err != nil {
		return nil, apperr.Gateway("list enterprises", err)
	}
	normalizeEnterprises(out)
	return out, nil
}

func (g *EnterpriseGateway) Recent(ctx context.Context, n int) ([]models.Enterprise, error) {
	var out []models.Enterprise
	if err := g.db.WithContext(ctx).Scopes(newestFirst).Limit(n).Find(&out).Error; err != nil {
		return nil, apperr.Gateway("recent enterprises", err)
	}
	normalizeEnterprises(out)
	return out, nil
}

func (g *EnterpriseGateway) Get(ctx context.Context, id uuid.UUID) (*models.Enterprise, error) {
	var e models.Enterprise
	if err := g.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, wrap("get enterprise", "enterprise", id, err)
	}
	normalizeEnterprise(&e)
	return &e, nil
}

func (g *EnterpriseGateway) UpdateStatus(ctx context.Context, id uuid.UUID, status models.EnterpriseStatus) (*models.Enterprise, error) {
	if !status.Valid() {
		return nil, apperr.Validation("status", "invalid enterprise status: "+string(status))
	}
	var e models.Enterprise
	res := g.db.WithContext(ctx).Model(&e).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, apperr.Gateway("update enterprise status", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("enterprise", id.String())
	}
	return &e, nil
}

func (g *EnterpriseGateway) Stats(ctx context.Context) (models.EnterpriseStats, error) {
	counts, total, err := countByStatus(ctx, g.db, &models.Enterprise{})
	if err != nil {
		return models.EnterpriseStats{}, apperr.Gateway("enterprise stats", err)
	}
	return enterpriseStats(counts, total), nil
}

func enterpriseStats(counts map[string]int64, total int64) models.EnterpriseStats {
	st := models.EnterpriseStats{Total: total}
	for raw, n := range counts {
		s, err := models.ParseEnterpriseStatus(raw)
		if err != nil {
			continue
		}
		switch s {
		case models.EnterpriseNew:
			st.New += n
		case models.EnterpriseContacted:
			st.Contacted += n
		case models.EnterpriseConverted:
			st.Converted += n
		case models.EnterpriseRejected:
			st.Rejected += n
		}
	}
	return st
}

func normalizeEnterprises(in []models.Enterprise) {
	for i := range in {
		normalizeEnterprise(&in[i])
	}
}

func normalizeEnterprise(e *models.Enterprise) {
	e.Status = e.Status.Canonical()
}
