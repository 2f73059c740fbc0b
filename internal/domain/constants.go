package domain

// DateFormat layout used for all calendar dates (YYYY-MM-DD).
const DateFormat = "2006-01-02"

// Business validation constants
const (
	MaxPatientNameLength = 200
	MaxReasonLength      = 500
)
