package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/apperr"
)

type EnterpriseStatus string

// Canonical enterprise vocabulary. "client" and "inactive" are legacy
// spellings still accepted by ParseEnterpriseStatus.
const (
	EnterpriseNew       EnterpriseStatus = "new"
	EnterpriseContacted EnterpriseStatus = "contacted"
	EnterpriseConverted EnterpriseStatus = "converted"
	EnterpriseRejected  EnterpriseStatus = "rejected"
)

var EnterpriseStatuses = []EnterpriseStatus{EnterpriseNew, EnterpriseContacted, EnterpriseConverted, EnterpriseRejected}

var enterpriseAliases = map[string]EnterpriseStatus{
	"client":   EnterpriseConverted,
	"inactive": EnterpriseRejected,
}

func (s EnterpriseStatus) Valid() bool {
	switch s {
	case EnterpriseNew, EnterpriseContacted, EnterpriseConverted, EnterpriseRejected:
		return true
	}
	return false
}

func ParseEnterpriseStatus(raw string) (EnterpriseStatus, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := enterpriseAliases[v]; ok {
		return alias, nil
	}
	s := EnterpriseStatus(v)
	if !s.Valid() {
		return "", apperr.Validation("status", "invalid enterprise status: "+raw)
	}
	return s, nil
}

// Canonical maps a stored legacy spelling onto the canonical status. Unknown
// values are returned unchanged.
func (s EnterpriseStatus) Canonical() EnterpriseStatus {
	if c, err := ParseEnterpriseStatus(string(s)); err == nil {
		return c
	}
	return s
}

// Enterprise is a B2B lead captured by the enterprise contact form.
type Enterprise struct {
	ID                uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name              string           `gorm:"not null" json:"name"`
	Email             string           `gorm:"not null;index" json:"email"`
	Phone             string           `gorm:"type:varchar(30)" json:"phone"`
	ContactPerson     string           `json:"contact_person"`
	Position          string           `json:"position"`
	ContactMethod     string           `json:"contact_method"`
	City              string           `json:"city"`
	Industry          string           `json:"industry"`
	VehicleType       string           `json:"vehicle_type"`
	MonthlyDeliveries string           `json:"monthly_deliveries"`
	OrderPreference   string           `json:"order_preference"`
	Message           *string          `gorm:"type:text" json:"message,omitempty"`
	Status            EnterpriseStatus `gorm:"type:varchar(20);default:'new';index" json:"status"`
	CreatedAt         time.Time        `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func (Enterprise) TableName() string { return "enterprises" }

type EnterpriseStats struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Contacted int64 `json:"contacted"`
	Converted int64 `json:"converted"`
	Rejected  int64 `json:"rejected"`
}
