package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a message left through the public contact form.
type Contact struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"not null" json:"email"`
	Phone     *string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Subject   string     `json:"subject"`
	Message   string     `gorm:"type:text" json:"message"`
	IsRead    bool       `gorm:"default:false;index" json:"is_read"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
}

func (Contact) TableName() string { return "contacts" }

func (c Contact) PhoneNumber() string {
	if c.Phone == nil {
		return ""
	}
	return *c.Phone
}
