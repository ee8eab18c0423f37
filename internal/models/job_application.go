package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/apperr"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

var ApplicationStatuses = []ApplicationStatus{ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

func ParseApplicationStatus(raw string) (ApplicationStatus, error) {
	s := ApplicationStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", apperr.Validation("status", "invalid application status: "+raw)
	}
	return s, nil
}

type JobApplication struct {
	ID              uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	JobOfferID      uuid.UUID         `gorm:"type:uuid;index;not null" json:"job_offer_id"`
	FirstName       string            `gorm:"not null" json:"first_name"`
	LastName        string            `gorm:"not null" json:"last_name"`
	Email           string            `gorm:"not null" json:"email"`
	Phone           string            `gorm:"type:varchar(30)" json:"phone"`
	ExperienceYears int               `gorm:"default:0" json:"experience_years"`
	Experience      *string           `gorm:"type:text" json:"experience,omitempty"`
	Message         *string           `gorm:"type:text" json:"message,omitempty"`
	Status          ApplicationStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt       time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`

	JobOffer *JobOffer `gorm:"foreignKey:JobOfferID" json:"job_offer,omitempty"`
}

func (JobApplication) TableName() string { return "job_applications" }

func (a JobApplication) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// CVPath and IDCardPath follow the storage layout written by the public site.
func (a JobApplication) CVPath() string {
	return fmt.Sprintf("applications/%s/cv.pdf", a.ID)
}

func (a JobApplication) IDCardPath() string {
	return fmt.Sprintf("applications/%s/id_card.pdf", a.ID)
}
