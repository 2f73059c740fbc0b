package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
)

// ScheduleProvider интерфейс поставщика расписания (рабочие часы + внешние бронирования)
type ScheduleProvider interface {
	WorkingHours(ctx context.Context, weekday time.Weekday) (*domain.DayWindow, error)
	PreExistingBookings(ctx context.Context, date time.Time) ([]domain.Interval, error)
}

// BookingStore интерфейс хранилища runtime-бронирований
type BookingStore interface {
	CommittedIntervals(ctx context.Context, date time.Time) ([]domain.Interval, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// DateLocker сериализует check-then-act последовательность по дате.
// Проверка доступности и коммит должны выполняться в одной критической
// секции, иначе два конкурентных запроса забронируют один слот.
type DateLocker interface {
	WithDate(ctx context.Context, date time.Time, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
