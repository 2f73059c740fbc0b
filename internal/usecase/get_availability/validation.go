package get_availability

import (
	"fmt"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.AppointmentType.IsValid() {
		return fmt.Errorf("%w: %q, known types: %v", ErrUnknownAppointmentType, req.AppointmentType, domain.AppointmentTypes())
	}

	return nil
}
