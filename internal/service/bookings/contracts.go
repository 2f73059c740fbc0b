package bookings

import (
	"context"
	"time"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
)

// BookingStore интерфейс хранилища бронирований (только чтение)
type BookingStore interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
