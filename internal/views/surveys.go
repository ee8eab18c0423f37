package views

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/cache"
	"github.com/topronto/admin-backoffice/internal/gateway"
	"github.com/topronto/admin-backoffice/internal/models"
)

type SurveyService struct {
	gw    gateway.Surveys
	store *cache.Store
}

func NewSurveyService(gw gateway.Surveys, store *cache.Store) *SurveyService {
	return &SurveyService{gw: gw, store: store}
}

// SurveyPage is one page of the survey list. NextOffset is -1 on the last page.
type SurveyPage struct {
	State[models.Survey]
	Limit      int `json:"limit"`
	Offset     int `json:"offset"`
	NextOffset int `json:"next_offset"`
}

func (s *SurveyService) List(ctx context.Context, q models.SurveyQuery) SurveyPage {
	items, r := cache.FetchTyped(ctx, s.store, cache.Key(KeySurveys, q.Params()), func(ctx context.Context) ([]models.Survey, error) {
		return s.gw.List(ctx, q)
	})
	page := SurveyPage{State: stateFrom[models.Survey](r), Limit: q.Limit, Offset: q.Offset, NextOffset: -1}
	if page.Phase == PhaseLoading {
		return page
	}
	page.Items = items
	for _, it := range items {
		page.Rows = append(page.Rows, Row[models.Survey]{
			Record:  it,
			Actions: []Action{{Name: ActionView, Enabled: true}},
		})
	}
	if page.Phase == PhaseLoaded {
		page.NextOffset = q.NextOffset(len(items))
		if len(items) == 0 {
			page.Empty = EmptyNoData
			if q.Offset > 0 || q.Locale != "" || q.Duration != nil || q.From != nil || q.To != nil {
				page.Empty = EmptyNoMatches
			}
		}
	}
	return page
}

// Answer is one question/answer pair of a survey.
type Answer struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Section groups answers the way the survey screen shows them.
type Section struct {
	Name    string   `json:"name"`
	Answers []Answer `json:"answers"`
}

type SurveyDetail struct {
	Survey      models.Survey `json:"survey"`
	Sections    []Section     `json:"sections"`
	Suggestions []string      `json:"suggestions"`
	Drawer      DrawerState   `json:"drawer"`
}

const (
	SectionGeneral    = "general_info"
	SectionExperience = "overall_experience"
	SectionService    = "service"
)

func (s *SurveyService) Detail(ctx context.Context, id uuid.UUID) (*SurveyDetail, error) {
	sv, err := fetchRecord(ctx, s.store, KeySurveys, id, func(ctx context.Context) (*models.Survey, error) {
		return s.gw.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	sections, suggestions, err := groupAnswers(sv.AnswersJSON)
	if err != nil {
		return nil, apperr.Gateway("decode survey answers", err)
	}
	return &SurveyDetail{Survey: *sv, Sections: sections, Suggestions: suggestions, Drawer: openDrawer()}, nil
}

// groupAnswers buckets answers by keyword in the question key. Free-text
// suggestions and comments are pulled out on their own.
func groupAnswers(raw []byte) ([]Section, []string, error) {
	sections := []Section{}
	suggestions := []string{}
	if len(raw) == 0 || string(raw) == "null" {
		return sections, suggestions, nil
	}
	var answers map[string]any
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, nil, err
	}

	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buckets := map[string][]Answer{}
	for _, k := range keys {
		v := answers[k]
		lk := strings.ToLower(k)
		switch {
		case containsAny(lk, "sugest", "suggest", "comment"):
			if v != nil && v != "" {
				suggestions = append(suggestions, fmt.Sprint(v))
			}
		case containsAny(lk, "exper", "satisf", "rate"):
			buckets[SectionExperience] = append(buckets[SectionExperience], Answer{Key: k, Value: v})
		case containsAny(lk, "serv", "support", "delivery"):
			buckets[SectionService] = append(buckets[SectionService], Answer{Key: k, Value: v})
		default:
			buckets[SectionGeneral] = append(buckets[SectionGeneral], Answer{Key: k, Value: v})
		}
	}
	for _, name := range []string{SectionGeneral, SectionExperience, SectionService} {
		if len(buckets[name]) > 0 {
			sections = append(sections, Section{Name: name, Answers: buckets[name]})
		}
	}
	return sections, suggestions, nil
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
