package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/MDC-AppointmentService/internal/api/handlers"
	createBooking "github.com/m04kA/MDC-AppointmentService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime            = "некорректный формат времени начала, ожидается HH:MM"
	msgUnknownAppointmentType = "неизвестный тип приёма"
	msgOutsideWorkingHours    = "запрошенное время вне рабочих часов"
	msgSlotConflict           = "запрошенный слот уже занят"
	msgInvalidInput           = "некорректные данные бронирования"
	msgScheduleUnavailable    = "расписание временно недоступно"
)

// Ошибки парсинга тела запроса; различаются, чтобы вернуть точное сообщение
var (
	errInvalidDate = errors.New("invalid date format")
	errInvalidTime = errors.New("invalid time format")
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			// Конфликт отличим от 400: запрос корректный, слот занят -
			// клиенту имеет смысл повторить с другим слотом
			h.logger.Warn("POST /bookings - Slot conflict: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrUnknownAppointmentType):
			h.logger.Warn("POST /bookings - Unknown appointment type: %s", req.AppointmentType)
			handlers.RespondBadRequest(w, msgUnknownAppointmentType)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrScheduleUnavailable):
			h.logger.Error("POST /bookings - Schedule unavailable: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgScheduleUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, time=%s",
		result.BookingID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
