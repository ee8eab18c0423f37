package models

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/topronto/admin-backoffice/internal/apperr"
)

// Survey is a partner satisfaction survey answer set.
type Survey struct {
	ID                  uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CompanyName         *string        `json:"company_name"`
	PartnershipDuration *int           `json:"partnership_duration"`
	Locale              *string        `gorm:"type:varchar(10);index" json:"locale"`
	UserAgent           *string        `json:"user_agent,omitempty"`
	AnswersJSON         datatypes.JSON `gorm:"column:answers_json" json:"answers_json"`
	CreatedAt           time.Time      `gorm:"index" json:"created_at"`
}

func (Survey) TableName() string { return "surveys" }

const (
	SurveyPageSize    = 20
	surveyMaxPageSize = 100
)

// DurationCond is a parsed partnership-duration filter expression.
type DurationCond struct {
	Op    string // "between", ">", ">=", "<", "<=", "="
	Value int
	Max   int
}

var (
	durationRange = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)$`)
	durationCmp   = regexp.MustCompile(`^(>=|<=|>|<)\s*(\d+)$`)
)

// ParseDurationExpr accepts "a-b", ">n", ">=n", "<n", "<=n" or a bare number.
func ParseDurationExpr(raw string) (DurationCond, error) {
	s := strings.TrimSpace(raw)
	if m := durationRange.FindStringSubmatch(s); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		return DurationCond{Op: "between", Value: lo, Max: hi}, nil
	}
	if m := durationCmp.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[2])
		return DurationCond{Op: m[1], Value: n}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return DurationCond{}, apperr.Validation("duration", "unsupported duration expression: "+raw)
	}
	return DurationCond{Op: "=", Value: n}, nil
}

// SurveyQuery is one page of the survey listing.
type SurveyQuery struct {
	Locale   string
	Duration *DurationCond
	From     *time.Time
	To       *time.Time // exclusive upper bound
	Limit    int
	Offset   int
}

// NewSurveyQuery parses the raw filters. A bare "to" date includes that whole day.
func NewSurveyQuery(locale, duration, from, to string, limit, offset int) (SurveyQuery, error) {
	q := SurveyQuery{Locale: strings.TrimSpace(locale), Limit: limit, Offset: offset}
	if q.Limit <= 0 {
		q.Limit = SurveyPageSize
	}
	if q.Limit > surveyMaxPageSize {
		q.Limit = surveyMaxPageSize
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if d := strings.TrimSpace(duration); d != "" {
		cond, err := ParseDurationExpr(d)
		if err != nil {
			return SurveyQuery{}, err
		}
		q.Duration = &cond
	}
	if f := strings.TrimSpace(from); f != "" {
		t, _, err := parseDay(f)
		if err != nil {
			return SurveyQuery{}, apperr.Validation("from", "invalid date: "+f)
		}
		q.From = &t
	}
	if s := strings.TrimSpace(to); s != "" {
		t, dateOnly, err := parseDay(s)
		if err != nil {
			return SurveyQuery{}, apperr.Validation("to", "invalid date: "+s)
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1)
		} else {
			t = t.Add(time.Nanosecond)
		}
		q.To = &t
	}
	return q, nil
}

func parseDay(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	return t, false, err
}

func (q SurveyQuery) Params() url.Values {
	v := url.Values{}
	if q.Locale != "" {
		v.Set("locale", q.Locale)
	}
	if q.Duration != nil {
		v.Set("duration", fmt.Sprintf("%s%d-%d", q.Duration.Op, q.Duration.Value, q.Duration.Max))
	}
	if q.From != nil {
		v.Set("from", q.From.UTC().Format(time.RFC3339Nano))
	}
	if q.To != nil {
		v.Set("to", q.To.UTC().Format(time.RFC3339Nano))
	}
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("offset", strconv.Itoa(q.Offset))
	return v
}

// NextOffset returns the offset of the following page, or -1 when the page was short.
func (q SurveyQuery) NextOffset(got int) int {
	if got < q.Limit {
		return -1
	}
	return q.Offset + q.Limit
}
