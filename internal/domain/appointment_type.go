package domain

// AppointmentType represents an enumerated appointment category.
// The category fully determines the slot duration.
type AppointmentType string

const (
	TypeConsultation AppointmentType = "consultation"
	TypeFollowup     AppointmentType = "followup"
	TypePhysical     AppointmentType = "physical"
	TypeSpecial      AppointmentType = "special"
)

// appointmentDurations fixed slot durations per appointment type, in minutes.
// Static configuration, not derived from anything.
var appointmentDurations = map[AppointmentType]int{
	TypeConsultation: 30,
	TypeFollowup:     15,
	TypePhysical:     45,
	TypeSpecial:      60,
}

// IsValid reports whether the type is one of the known categories.
func (t AppointmentType) IsValid() bool {
	_, ok := appointmentDurations[t]
	return ok
}

// DurationMinutes returns the configured duration for the type.
// The second return value is false for unknown types.
func (t AppointmentType) DurationMinutes() (int, bool) {
	d, ok := appointmentDurations[t]
	return d, ok
}

// AppointmentTypes returns all known appointment types.
// Used for validation messages and configuration listings.
func AppointmentTypes() []AppointmentType {
	return []AppointmentType{TypeConsultation, TypeFollowup, TypePhysical, TypeSpecial}
}
