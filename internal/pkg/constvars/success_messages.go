package constvars

const (
	SuccessPatientListRefreshed = "patient list refreshed"
	SuccessLoggedOut            = "logged out"
)
