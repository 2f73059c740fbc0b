package models

import (
	"time"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
)

// BookingResponse модель бронирования для чтения
type BookingResponse struct {
	BookingID        string
	ConfirmationCode string
	Status           string
	AppointmentType  string
	Date             time.Time
	StartTime        string
	EndTime          string
	PatientName      string
	PatientEmail     string
	PatientPhone     string
	Reason           *string
	CreatedAt        time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse
}

// FromDomainBooking конвертирует доменное бронирование в модель чтения
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		BookingID:        b.ID,
		ConfirmationCode: b.ConfirmationCode,
		Status:           string(b.Status),
		AppointmentType:  string(b.AppointmentType),
		Date:             b.Date,
		StartTime:        b.StartTime.String(),
		EndTime:          b.EndTime.String(),
		PatientName:      b.Patient.Name,
		PatientEmail:     b.Patient.Email,
		PatientPhone:     b.Patient.Phone,
		Reason:           b.Reason,
		CreatedAt:        b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: result}
}
