package views

import "github.com/topronto/admin-backoffice/internal/models"

const (
	ActionView         = "view"
	ActionApprove      = "approve"
	ActionReject       = "reject"
	ActionSetStatus    = "set_status"
	ActionMarkRead     = "mark_read"
	ActionReply        = "reply"
	ActionActivate     = "activate"
	ActionDeactivate   = "deactivate"
	ActionEdit         = "edit"
	ActionDelete       = "delete"
	ActionApplications = "applications"
)

// Approve and reject are only offered while the application is pending.
func DriverActions(d models.Driver) []Action {
	pending := d.Status == models.DriverPending
	return []Action{
		{Name: ActionView, Enabled: true},
		{Name: ActionApprove, Target: string(models.DriverApproved), Enabled: pending},
		{Name: ActionReject, Target: string(models.DriverRejected), Enabled: pending},
	}
}

func EnterpriseActions(e models.Enterprise) []Action {
	out := []Action{{Name: ActionView, Enabled: true}}
	for _, s := range models.EnterpriseStatuses {
		out = append(out, Action{Name: ActionSetStatus, Target: string(s), Enabled: s != e.Status})
	}
	return out
}

// Marking as read is one-way.
func ContactActions(c models.Contact) []Action {
	return []Action{
		{Name: ActionView, Enabled: true},
		{Name: ActionMarkRead, Enabled: !c.IsRead},
		{Name: ActionReply, Enabled: true},
	}
}

func JobOfferActions(o models.JobOffer) []Action {
	toggle := Action{Name: ActionDeactivate, Enabled: true}
	if !o.IsActive {
		toggle.Name = ActionActivate
	}
	return []Action{
		{Name: ActionApplications, Enabled: true},
		{Name: ActionEdit, Enabled: true},
		toggle,
		{Name: ActionDelete, Enabled: true},
	}
}

func ApplicationActions(a models.JobApplication) []Action {
	out := []Action{{Name: ActionView, Enabled: true}}
	for _, s := range []models.ApplicationStatus{
		models.ApplicationReviewed,
		models.ApplicationAccepted,
		models.ApplicationRejected,
		models.ApplicationPending,
	} {
		out = append(out, Action{Name: ActionSetStatus, Target: string(s), Enabled: s != a.Status})
	}
	return out
}
