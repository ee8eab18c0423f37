package views

// Cache resources. Detail entries live under "{resource}/{id}".
const (
	KeyDrivers           = "drivers"
	KeyDriversStats      = "drivers-stats"
	KeyRecentDrivers     = "recent-drivers"
	KeyEnterprises       = "enterprises"
	KeyEnterprisesStats  = "enterprises-stats"
	KeyRecentEnterprises = "recent-enterprises"
	KeyContacts          = "contacts"
	KeyContactsUnread    = "contacts-unread"
	KeyJobOffers         = "job-offers"
	KeyJobOffersActive   = "job-offers-active"
	KeyJobApplications   = "job-applications"
	KeySurveys           = "surveys"
)

// What each mutation makes stale.
var (
	InvalidateDriverStatus      = []string{KeyDrivers, KeyDriversStats, KeyRecentDrivers}
	InvalidateEnterpriseStatus  = []string{KeyEnterprises, KeyEnterprisesStats, KeyRecentEnterprises}
	InvalidateContactRead       = []string{KeyContacts, KeyContactsUnread}
	InvalidateJobOffer          = []string{KeyJobOffers, KeyJobOffersActive}
	InvalidateApplicationStatus = []string{KeyJobApplications, KeyJobOffers}
)
