package create_booking

import "errors"

var (
	// ErrUnknownAppointmentType возвращается при неизвестном типе приёма
	ErrUnknownAppointmentType = errors.New("create_booking: unknown appointment type")

	// ErrOutsideWorkingHours возвращается, когда запрошенный интервал не лежит
	// на сетке слотов: время не кратно длительности, день выходной или
	// слот выходит за рабочие часы
	ErrOutsideWorkingHours = errors.New("create_booking: requested time is outside working hours")

	// ErrSlotConflict возвращается, когда запрошенный слот уже занят.
	// Запрос корректный - клиенту имеет смысл повторить с другим слотом
	ErrSlotConflict = errors.New("create_booking: slot is no longer available")

	// ErrScheduleUnavailable возвращается, когда расписание не удаётся прочитать
	ErrScheduleUnavailable = errors.New("create_booking: schedule is unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
