package gateway

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/models"
)

type SurveyGateway struct {
	db *gorm.DB
}

func NewSurveyGateway(db *gorm.DB) *SurveyGateway {
	return &SurveyGateway{db: db}
}

func (g *SurveyGateway) listQuery(ctx context.Context, q models.SurveyQuery) *gorm.DB {
	tx := g.db.WithContext(ctx).Model(&models.Survey{})
	if q.Locale != "" {
		tx = tx.Where("locale = ?", q.Locale)
	}
	if d := q.Duration; d != nil {
		switch d.Op {
		case "between":
			tx = tx.Where("partnership_duration BETWEEN ? AND ?", d.Value, d.Max)
		case ">", ">=", "<", "<=", "=":
			tx = tx.Where("partnership_duration "+d.Op+" ?", d.Value)
		}
	}
	if q.From != nil {
		tx = tx.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		tx = tx.Where("created_at < ?", *q.To)
	}
	return tx.Scopes(newestFirst).Limit(q.Limit).Offset(q.Offset)
}

func (g *SurveyGateway) List(ctx context.Context, q models.SurveyQuery) ([]models.Survey, error) {
	var out []models.Survey
	if err := g.listQuery(ctx, q).Find(&out).Error; err != nil {
		return nil, apperr.Gateway("list surveys", err)
	}
	return out, nil
}

func (g *SurveyGateway) Get(ctx context.Context, id uuid.UUID) (*models.Survey, error) {
	var s models.Survey
	if err := g.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, wrap("get survey", "survey", id, err)
	}
	return &s, nil
}
