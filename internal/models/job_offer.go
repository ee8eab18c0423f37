package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/topronto/admin-backoffice/internal/apperr"
)

type JobOffer struct {
	ID                uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title             string                      `gorm:"not null" json:"title"`
	Description       string                      `gorm:"type:text" json:"description"`
	Location          string                      `json:"location"`
	SalaryRange       *string                     `json:"salary_range,omitempty"`
	EmploymentType    string                      `gorm:"type:varchar(30)" json:"employment_type"`
	Requirements      datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"requirements"`
	Benefits          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"benefits"`
	IsActive          bool                        `gorm:"default:true;index" json:"is_active"`
	ApplicationsCount int                         `gorm:"default:0;->" json:"applications_count"` // maintained by the backend
	CreatedAt         time.Time                   `gorm:"index" json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}

func (JobOffer) TableName() string { return "job_offers" }

// JobOfferInput is the body of a job offer creation.
type JobOfferInput struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	SalaryRange    *string  `json:"salary_range"`
	EmploymentType string   `json:"employment_type"`
	Requirements   []string `json:"requirements"`
	Benefits       []string `json:"benefits"`
	IsActive       *bool    `json:"is_active"`
}

func (in *JobOfferInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.EmploymentType = strings.TrimSpace(in.EmploymentType)
	in.Requirements = compactLines(in.Requirements)
	in.Benefits = compactLines(in.Benefits)
	if in.SalaryRange != nil {
		v := strings.TrimSpace(*in.SalaryRange)
		if v == "" {
			in.SalaryRange = nil
		} else {
			in.SalaryRange = &v
		}
	}
}

func (in JobOfferInput) Validate() error {
	errs := apperr.FieldErrors{}
	if in.Title == "" {
		errs.Add("title", "title is required")
	}
	if in.Description == "" {
		errs.Add("description", "description is required")
	}
	if in.Location == "" {
		errs.Add("location", "location is required")
	}
	if in.EmploymentType == "" {
		errs.Add("employment_type", "employment type is required")
	}
	return errs.Err()
}

func (in JobOfferInput) Model() JobOffer {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return JobOffer{
		Title:          in.Title,
		Description:    in.Description,
		Location:       in.Location,
		SalaryRange:    in.SalaryRange,
		EmploymentType: in.EmploymentType,
		Requirements:   datatypes.NewJSONSlice(nonNil(in.Requirements)),
		Benefits:       datatypes.NewJSONSlice(nonNil(in.Benefits)),
		IsActive:       active,
	}
}

// JobOfferPatch is a partial update; nil fields are left untouched.
type JobOfferPatch struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Location       *string   `json:"location"`
	SalaryRange    *string   `json:"salary_range"`
	EmploymentType *string   `json:"employment_type"`
	Requirements   *[]string `json:"requirements"`
	Benefits       *[]string `json:"benefits"`
	IsActive       *bool     `json:"is_active"`
}

func (p JobOfferPatch) Validate() error {
	errs := apperr.FieldErrors{}
	blank := func(v *string) bool { return v != nil && strings.TrimSpace(*v) == "" }
	if blank(p.Title) {
		errs.Add("title", "title cannot be empty")
	}
	if blank(p.Description) {
		errs.Add("description", "description cannot be empty")
	}
	if blank(p.Location) {
		errs.Add("location", "location cannot be empty")
	}
	if blank(p.EmploymentType) {
		errs.Add("employment_type", "employment type cannot be empty")
	}
	return errs.Err()
}

func (p JobOfferPatch) IsEmpty() bool {
	return len(p.Updates()) == 0
}

// Updates returns the column map for gorm's Updates.
func (p JobOfferPatch) Updates() map[string]any {
	u := map[string]any{}
	if p.Title != nil {
		u["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		u["description"] = strings.TrimSpace(*p.Description)
	}
	if p.Location != nil {
		u["location"] = strings.TrimSpace(*p.Location)
	}
	if p.SalaryRange != nil {
		if v := strings.TrimSpace(*p.SalaryRange); v == "" {
			u["salary_range"] = nil
		} else {
			u["salary_range"] = v
		}
	}
	if p.EmploymentType != nil {
		u["employment_type"] = strings.TrimSpace(*p.EmploymentType)
	}
	if p.Requirements != nil {
		u["requirements"] = datatypes.NewJSONSlice(nonNil(compactLines(*p.Requirements)))
	}
	if p.Benefits != nil {
		u["benefits"] = datatypes.NewJSONSlice(nonNil(compactLines(*p.Benefits)))
	}
	if p.IsActive != nil {
		u["is_active"] = *p.IsActive
	}
	return u
}

func compactLines(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
