package get_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/MDC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MDC-AppointmentService/internal/domain"
	bookingsService "github.com/m04kA/MDC-AppointmentService/internal/service/bookings"
	"github.com/m04kA/MDC-AppointmentService/internal/service/bookings/models"
)

const (
	msgMissingBookingID = "ID бронирования обязателен"
	msgBookingNotFound  = "бронирование не найдено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// BookingView HTTP модель бронирования
type BookingView struct {
	BookingID        string  `json:"bookingId"`
	Status           string  `json:"status"`
	ConfirmationCode string  `json:"confirmationCode"`
	AppointmentType  string  `json:"appointmentType"`
	Date             string  `json:"date"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	PatientName      string  `json:"patientName"`
	PatientEmail     string  `json:"patientEmail"`
	PatientPhone     string  `json:"patientPhone"`
	Reason           *string `json:"reason,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP модель
func FromServiceResponse(resp *models.BookingResponse) *BookingView {
	return &BookingView{
		BookingID:        resp.BookingID,
		Status:           resp.Status,
		ConfirmationCode: resp.ConfirmationCode,
		AppointmentType:  resp.AppointmentType,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime,
		EndTime:          resp.EndTime,
		PatientName:      resp.PatientName,
		PatientEmail:     resp.PatientEmail,
		PatientPhone:     resp.PatientPhone,
		Reason:           resp.Reason,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("GET /bookings/{id} - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingBookingID)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
