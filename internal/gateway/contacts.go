package gateway

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/models"
)

type ContactGateway struct {
	db *gorm.DB
}

func NewContactGateway(db *gorm.DB) *ContactGateway {
	return &ContactGateway{db: db}
}

func (g *ContactGateway) listQuery(ctx context.Context, f models.ContactFilter) *gorm.DB {
	tx := g.db.WithContext(ctx).Model(&models.Contact{})
	switch f.Read {
	case models.ReadOnly:
		tx = tx.Where("is_read = ?", true)
	case models.UnreadOnly:
		tx = tx.Where("is_read = ?", false)
	}
	return tx.Scopes(searchScope(f.Search, "name", "email", "subject"), newestFirst)
}

func (g *ContactGateway) List(ctx context.Context, f models.ContactFilter) ([]models.Contact, error) {
	var out []models.Contact
	if err := g.listQuery(ctx, f).Find(&out).Error; err != nil {
		return nil, apperr.Gateway("list contacts", err)
	}
	return out, nil
}

func (g *ContactGateway) Get(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	var c models.Contact
	if err := g.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, wrap("get contact", "contact", id, err)
	}
	return &c, nil
}

// MarkAsRead is one-way; there is no mark-as-unread.
func (g *ContactGateway) MarkAsRead(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	var c models.Contact
	res := g.db.WithContext(ctx).Model(&c).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("is_read", true)
	if res.Error != nil {
		return nil, apperr.Gateway("mark contact read", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("contact", id.String())
	}
	return &c, nil
}

func (g *ContactGateway) UnreadCount(ctx context.Context) (int64, error) {
	var n int64
	err := g.db.WithContext(ctx).Model(&models.Contact{}).Where("is_read = ?", false).Count(&n).Error
	if err != nil {
		return 0, apperr.Gateway("count unread contacts", err)
	}
	return n, nil
}
