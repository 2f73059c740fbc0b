package create_booking

import (
	"time"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
	createBooking "github.com/m04kA/MDC-AppointmentService/internal/usecase/create_booking"
	"github.com/m04kA/MDC-AppointmentService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	AppointmentType string         `json:"appointmentType"`
	Date            string         `json:"date"`      // "2026-08-24"
	StartTime       string         `json:"startTime"` // "09:00"
	Patient         PatientRequest `json:"patient"`
	Reason          *string        `json:"reason,omitempty"`
}

// PatientRequest данные пациента в HTTP запросе
type PatientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID        string         `json:"bookingId"`
	Status           string         `json:"status"`
	ConfirmationCode string         `json:"confirmationCode"`
	Details          BookingDetails `json:"details"`
}

// BookingDetails эхо деталей бронирования
type BookingDetails struct {
	AppointmentType string         `json:"appointmentType"`
	Date            string         `json:"date"`
	StartTime       string         `json:"startTime"`
	EndTime         string         `json:"endTime"`
	Patient         PatientRequest `json:"patient"`
	Reason          *string        `json:"reason,omitempty"`
	CreatedAt       string         `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		AppointmentType: domain.AppointmentType(r.AppointmentType),
		Date:            date,
		StartTime:       startTime,
		Patient: domain.Patient{
			Name:  r.Patient.Name,
			Email: r.Patient.Email,
			Phone: r.Patient.Phone,
		},
		Reason: r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:        resp.BookingID,
		Status:           resp.Status,
		ConfirmationCode: resp.ConfirmationCode,
		Details: BookingDetails{
			AppointmentType: string(resp.AppointmentType),
			Date:            resp.Date.Format(domain.DateFormat),
			StartTime:       resp.StartTime.String(),
			EndTime:         resp.EndTime.String(),
			Patient: PatientRequest{
				Name:  resp.Patient.Name,
				Email: resp.Patient.Email,
				Phone: resp.Patient.Phone,
			},
			Reason:    resp.Reason,
			CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		},
	}
}
