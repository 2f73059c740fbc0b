package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
)

// Store in-memory хранилище подтверждённых бронирований.
//
// Единственное изменяемое состояние сервиса: дата -> список бронирований,
// созданных за время жизни процесса. Store не проверяет пересечения -
// за это отвечает use case создания бронирования, который держит
// эксклюзивную блокировку даты на всём протяжении check-then-act.
//
// RWMutex гарантирует, что читатели никогда не видят частично
// выполненный коммит.
type Store struct {
	mu     sync.RWMutex
	byDate map[string][]*domain.Booking
	byID   map[string]*domain.Booking
}

// NewStore creates an empty booking store.
// Each service instance owns its store; tests create independent instances.
func NewStore() *Store {
	return &Store{
		byDate: make(map[string][]*domain.Booking),
		byID:   make(map[string]*domain.Booking),
	}
}

// Create appends the booking unconditionally and stamps CreatedAt.
// Availability must have been verified by the caller under the date lock.
func (s *Store) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[b.ID]; exists {
		return nil, ErrDuplicateID
	}

	stored := *b
	stored.CreatedAt = time.Now()

	key := dateKey(b.Date)
	s.byDate[key] = append(s.byDate[key], &stored)
	s.byID[stored.ID] = &stored

	result := stored
	return &result, nil
}

// GetByID returns the booking with the given id.
func (s *Store) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	result := *b
	return &result, nil
}

// GetByDate returns the runtime bookings committed for the date,
// ordered by start time.
func (s *Store) GetByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.byDate[dateKey(date)]
	result := make([]*domain.Booking, 0, len(stored))
	for _, b := range stored {
		copied := *b
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})

	return result, nil
}

// CommittedIntervals returns the runtime-committed intervals for the date,
// ordered by start time. This is the read consulted by slot generation.
func (s *Store) CommittedIntervals(_ context.Context, date time.Time) ([]domain.Interval, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.byDate[dateKey(date)]
	intervals := make([]domain.Interval, 0, len(stored))
	for _, b := range stored {
		intervals = append(intervals, b.Interval())
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start.IsBefore(intervals[j].Start)
	})

	return intervals, nil
}

func dateKey(date time.Time) string {
	return date.Format(domain.DateFormat)
}
