package domain

import (
	"time"

	"github.com/m04kA/MDC-AppointmentService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

// StatusConfirmed is the only status in this service: a booking is created
// confirmed and stays confirmed (no cancellation or rescheduling).
const StatusConfirmed BookingStatus = "confirmed"

// Patient represents the requester details echoed back in confirmations.
type Patient struct {
	Name  string
	Email string
	Phone string
}

// Booking represents a committed appointment reservation.
// Created only by a successful commit; never mutated or deleted afterwards.
type Booking struct {
	ID               string
	ConfirmationCode string
	AppointmentType  AppointmentType
	Date             time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	Status           BookingStatus
	Patient          Patient
	Reason           *string
	CreatedAt        time.Time
}

// Interval returns the committed time interval of the booking.
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}
