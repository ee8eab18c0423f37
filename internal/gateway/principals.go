package gateway

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/models"
)

type AdminGateway struct {
	db *gorm.DB
}

func NewAdminGateway(db *gorm.DB) *AdminGateway {
	return &AdminGateway{db: db}
}

// FindActiveByUserID returns NotFoundError when the principal is not an active admin.
func (g *AdminGateway) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*models.AdminUser, error) {
	var a models.AdminUser
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&a).Error
	if err != nil {
		return nil, wrap("find admin", "admin user", userID, err)
	}
	return &a, nil
}

type UserGateway struct {
	db *gorm.DB
}

func NewUserGateway(db *gorm.DB) *UserGateway {
	return &UserGateway{db: db}
}

func (g *UserGateway) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := g.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user", "")
	}
	if err != nil {
		return nil, apperr.Gateway("find user", err)
	}
	return &u, nil
}

func (g *UserGateway) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := g.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, wrap("find user", "user", id, err)
	}
	return &u, nil
}

func (g *UserGateway) TouchSignIn(ctx context.Context, id uuid.UUID) error {
	err := g.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("last_sign_in_at", time.Now()).Error
	return apperr.Gateway("touch sign in", err)
}
