package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
)

// ScheduleProvider интерфейс поставщика расписания (рабочие часы + внешние бронирования)
type ScheduleProvider interface {
	// WorkingHours возвращает окно рабочих часов на день недели, nil - выходной
	WorkingHours(ctx context.Context, weekday time.Weekday) (*domain.DayWindow, error)
	// PreExistingBookings возвращает занятые интервалы из внешнего расписания на дату
	PreExistingBookings(ctx context.Context, date time.Time) ([]domain.Interval, error)
}

// BookingStore интерфейс хранилища runtime-бронирований (только чтение)
type BookingStore interface {
	CommittedIntervals(ctx context.Context, date time.Time) ([]domain.Interval, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
