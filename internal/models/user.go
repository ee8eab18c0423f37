package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an authentication principal. Admin rights come from AdminUser.
type User struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name  string    `json:"name"`
	Email string    `gorm:"uniqueIndex;not null" json:"email"`

	Password string `json:"-"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "auth_users" }
