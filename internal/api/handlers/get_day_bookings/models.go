package get_day_bookings

import (
	"time"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
	"github.com/m04kA/MDC-AppointmentService/internal/service/bookings/models"
)

// DayBookingsResponse HTTP response model
type DayBookingsResponse struct {
	Date     string        `json:"date"`
	Bookings []BookingView `json:"bookings"`
}

// BookingView краткая HTTP модель бронирования в списке
type BookingView struct {
	BookingID       string `json:"bookingId"`
	Status          string `json:"status"`
	AppointmentType string `json:"appointmentType"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	PatientName     string `json:"patientName"`
	CreatedAt       string `json:"createdAt"`
}

// FromServiceResponse конвертирует список сервиса в HTTP response
func FromServiceResponse(date time.Time, resp *models.BookingListResponse) *DayBookingsResponse {
	bookings := make([]BookingView, len(resp.Bookings))
	for i, b := range resp.Bookings {
		bookings[i] = BookingView{
			BookingID:       b.BookingID,
			Status:          b.Status,
			AppointmentType: b.AppointmentType,
			StartTime:       b.StartTime,
			EndTime:         b.EndTime,
			PatientName:     b.PatientName,
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		}
	}

	return &DayBookingsResponse{
		Date:     date.Format(domain.DateFormat),
		Bookings: bookings,
	}
}
