package models

import (
	"net/url"
	"strings"

	"github.com/topronto/admin-backoffice/internal/apperr"
)

// StatusAll in a status dropdown means "no status filter".
const StatusAll = "all"

func containsFold(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func params(kv ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			v.Set(kv[i], kv[i+1])
		}
	}
	return v
}

type DriverFilter struct {
	Status DriverStatus
	Search string
}

func NewDriverFilter(status, search string) (DriverFilter, error) {
	f := DriverFilter{Search: strings.TrimSpace(search)}
	status = strings.TrimSpace(status)
	if status == "" || status == StatusAll {
		return f, nil
	}
	s, err := ParseDriverStatus(status)
	if err != nil {
		return DriverFilter{}, err
	}
	f.Status = s
	return f, nil
}

func (f DriverFilter) Params() url.Values {
	return params("status", string(f.Status), "search", f.Search)
}

func (f DriverFilter) IsZero() bool { return f.Status == "" && f.Search == "" }

func (f DriverFilter) Match(d Driver) bool {
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	return containsFold(f.Search, d.FirstName, d.LastName, d.Email)
}

type EnterpriseFilter struct {
	Status EnterpriseStatus
	Search string
}

func NewEnterpriseFilter(status, search string) (EnterpriseFilter, error) {
	f := EnterpriseFilter{Search: strings.TrimSpace(search)}
	status = strings.TrimSpace(status)
	if status == "" || status == StatusAll {
		return f, nil
	}
	s, err := ParseEnterpriseStatus(status)
	if err != nil {
		return EnterpriseFilter{}, err
	}
	f.Status = s
	return f, nil
}

func (f EnterpriseFilter) Params() url.Values {
	return params("status", string(f.Status), "search", f.Search)
}

func (f EnterpriseFilter) IsZero() bool { return f.Status == "" && f.Search == "" }

func (f EnterpriseFilter) Match(e Enterprise) bool {
	if f.Status != "" && e.Status.Canonical() != f.Status {
		return false
	}
	return containsFold(f.Search, e.Name, e.ContactPerson, e.Email)
}

// ReadState filters contacts by their is_read flag.
type ReadState string

const (
	ReadAny    ReadState = ""
	ReadOnly   ReadState = "read"
	UnreadOnly ReadState = "unread"
)

type ContactFilter struct {
	Read   ReadState
	Search string
}

func NewContactFilter(read, search string) (ContactFilter, error) {
	f := ContactFilter{Search: strings.TrimSpace(search)}
	switch r := strings.ToLower(strings.TrimSpace(read)); r {
	case "", StatusAll:
	case string(ReadOnly), string(UnreadOnly):
		f.Read = ReadState(r)
	default:
		return ContactFilter{}, apperr.Validation("read", "must be all, read or unread")
	}
	return f, nil
}

func (f ContactFilter) Params() url.Values {
	return params("read", string(f.Read), "search", f.Search)
}

func (f ContactFilter) IsZero() bool { return f.Read == ReadAny && f.Search == "" }

func (f ContactFilter) Match(c Contact) bool {
	switch f.Read {
	case ReadOnly:
		if !c.IsRead {
			return false
		}
	case UnreadOnly:
		if c.IsRead {
			return false
		}
	}
	return containsFold(f.Search, c.Name, c.Email, c.Subject)
}

// ActiveState filters job offers by their is_active flag.
type ActiveState string

const (
	ActiveAny    ActiveState = ""
	ActiveOnly   ActiveState = "active"
	InactiveOnly ActiveState = "inactive"
)

type JobOfferFilter struct {
	Active ActiveState
	Search string
}

func NewJobOfferFilter(active, search string) (JobOfferFilter, error) {
	f := JobOfferFilter{Search: strings.TrimSpace(search)}
	switch a := strings.ToLower(strings.TrimSpace(active)); a {
	case "", StatusAll:
	case string(ActiveOnly), string(InactiveOnly):
		f.Active = ActiveState(a)
	default:
		return JobOfferFilter{}, apperr.Validation("active", "must be all, active or inactive")
	}
	return f, nil
}

func (f JobOfferFilter) Params() url.Values {
	return params("active", string(f.Active), "search", f.Search)
}

func (f JobOfferFilter) IsZero() bool { return f.Active == ActiveAny && f.Search == "" }

func (f JobOfferFilter) Match(o JobOffer) bool {
	switch f.Active {
	case ActiveOnly:
		if !o.IsActive {
			return false
		}
	case InactiveOnly:
		if o.IsActive {
			return false
		}
	}
	return containsFold(f.Search, o.Title, o.Location)
}

// ApplicationFilter is applied in memory over the applications of one offer.
type ApplicationFilter struct {
	Status ApplicationStatus
	Search string
}

func NewApplicationFilter(status, search string) (ApplicationFilter, error) {
	f := ApplicationFilter{Search: strings.TrimSpace(search)}
	status = strings.TrimSpace(status)
	if status == "" || status == StatusAll {
		return f, nil
	}
	s, err := ParseApplicationStatus(status)
	if err != nil {
		return ApplicationFilter{}, err
	}
	f.Status = s
	return f, nil
}

func (f ApplicationFilter) IsZero() bool { return f.Status == "" && f.Search == "" }

func (f ApplicationFilter) Match(a JobApplication) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	return containsFold(f.Search, a.FirstName, a.LastName, a.Email, a.Phone)
}

func (f ApplicationFilter) Apply(in []JobApplication) []JobApplication {
	if f.IsZero() {
		return in
	}
	out := make([]JobApplication, 0, len(in))
	for _, a := range in {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}
