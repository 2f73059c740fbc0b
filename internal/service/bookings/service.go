package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
	bookingStore "github.com/m04kA/MDC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/MDC-AppointmentService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований.
// Бронирования терминальны: после подтверждения не меняются и не удаляются,
// поэтому сервис предоставляет только операции чтения.
type Service struct {
	store  BookingStore
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(store BookingStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	if id == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingStore.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: store error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - store error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByDate получает бронирования, созданные за время жизни процесса,
// на указанную дату (в порядке возрастания времени начала)
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	s.logger.Info("GetByDate: fetching bookings for date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	bookings, err := s.store.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetByDate: store error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - store error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByDate: fetched %d bookings for date=%s", len(bookings), date.Format(domain.DateFormat))
	return models.FromDomainBookingList(bookings), nil
}
