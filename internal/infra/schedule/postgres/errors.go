package postgres

import "errors"

var (
	// ErrScheduleUnavailable возвращается при любой ошибке чтения расписания из БД
	ErrScheduleUnavailable = errors.New("schedule.postgres: schedule is unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.postgres: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.postgres: failed to scan row")
)
