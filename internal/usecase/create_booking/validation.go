package create_booking

import (
	"fmt"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.AppointmentType.IsValid() {
		return fmt.Errorf("%w: %q, known types: %v", ErrUnknownAppointmentType, req.AppointmentType, domain.AppointmentTypes())
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Patient.Name == "" {
		return fmt.Errorf("%w: patient name is required", ErrInvalidInput)
	}

	if len(req.Patient.Name) > domain.MaxPatientNameLength {
		return fmt.Errorf("%w: patient name is too long", ErrInvalidInput)
	}

	if req.Patient.Email == "" {
		return fmt.Errorf("%w: patient email is required", ErrInvalidInput)
	}

	if req.Patient.Phone == "" {
		return fmt.Errorf("%w: patient phone is required", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	return nil
}
