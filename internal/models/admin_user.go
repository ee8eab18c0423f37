package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser grants the admin role to an auth principal. Read-only here.
type AdminUser struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Email     string    `gorm:"not null" json:"email"`
	Role      string    `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AdminUser) TableName() string { return "admin_users" }
