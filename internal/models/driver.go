package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/apperr"
)

type DriverStatus string

const (
	DriverPending  DriverStatus = "pending"
	DriverApproved DriverStatus = "approved"
	DriverRejected DriverStatus = "rejected"
)

var DriverStatuses = []DriverStatus{DriverPending, DriverApproved, DriverRejected}

func (s DriverStatus) Valid() bool {
	switch s {
	case DriverPending, DriverApproved, DriverRejected:
		return true
	}
	return false
}

func ParseDriverStatus(raw string) (DriverStatus, error) {
	s := DriverStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", apperr.Validation("status", "invalid driver status: "+raw)
	}
	return s, nil
}

// Driver is a driver application submitted through the public site.
type Driver struct {
	ID              uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName       string       `gorm:"not null" json:"first_name"`
	LastName        string       `gorm:"not null" json:"last_name"`
	Email           string       `gorm:"not null;index" json:"email"`
	Phone           string       `gorm:"type:varchar(30)" json:"phone"`
	City            string       `json:"city"`
	HasVehicle      bool         `gorm:"default:false" json:"has_vehicle"`
	VehicleType     *string      `json:"vehicle_type,omitempty"`
	LicenseNumber   *string      `json:"license_number,omitempty"`
	ExperienceYears int          `gorm:"default:0" json:"experience_years"`
	Message         *string      `gorm:"type:text" json:"message,omitempty"`
	Status          DriverStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt       time.Time    `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (Driver) TableName() string { return "drivers" }

func (d Driver) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

type DriverStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
