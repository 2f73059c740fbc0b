package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/MDC-AppointmentService/internal/api/handlers"
	getAvailability "github.com/m04kA/MDC-AppointmentService/internal/usecase/get_availability"
)

const (
	msgMissingDate            = "дата обязательна"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingAppointmentType = "тип приёма обязателен"
	msgUnknownAppointmentType = "неизвестный тип приёма"
	msgScheduleUnavailable    = "расписание временно недоступно"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), appointmentType (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	appointmentType := r.URL.Query().Get("appointmentType")
	if appointmentType == "" {
		h.logger.Warn("GET /availability - Missing appointment type")
		handlers.RespondBadRequest(w, msgMissingAppointmentType)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, appointmentType)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrUnknownAppointmentType):
			h.logger.Warn("GET /availability - Unknown appointment type: %s", appointmentType)
			handlers.RespondBadRequest(w, msgUnknownAppointmentType)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrScheduleUnavailable):
			h.logger.Error("GET /availability - Schedule unavailable: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgScheduleUnavailable)

		default:
			h.logger.Error("GET /availability - Failed to get slots: date=%s, type=%s, error=%v",
				dateStr, appointmentType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Slots retrieved successfully: date=%s, type=%s, slots_count=%d",
		dateStr, appointmentType, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
