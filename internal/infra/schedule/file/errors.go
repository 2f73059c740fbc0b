package file

import "errors"

var (
	// ErrScheduleUnavailable возвращается, когда файл расписания не удаётся прочитать или разобрать
	ErrScheduleUnavailable = errors.New("schedule.file: schedule is unavailable")

	// ErrInvalidSchedule возвращается, когда содержимое файла не проходит валидацию
	ErrInvalidSchedule = errors.New("schedule.file: invalid schedule data")
)
