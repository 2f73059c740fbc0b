package get_availability

import "errors"

var (
	// ErrUnknownAppointmentType возвращается при неизвестном типе приёма
	ErrUnknownAppointmentType = errors.New("get_availability: unknown appointment type")

	// ErrScheduleUnavailable возвращается, когда расписание не удаётся прочитать
	ErrScheduleUnavailable = errors.New("get_availability: schedule is unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
