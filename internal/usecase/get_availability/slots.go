package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
)

// collectBusyIntervals объединяет занятые интервалы из двух источников:
// внешнего расписания и runtime-бронирований. Оба источника равноправны
// при проверке конфликтов.
func collectBusyIntervals(
	ctx context.Context,
	schedule ScheduleProvider,
	store BookingStore,
	date time.Time,
) ([]domain.Interval, error) {
	preExisting, err := schedule.PreExistingBookings(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read pre-existing bookings: %v", ErrScheduleUnavailable, err)
	}

	committed, err := store.CommittedIntervals(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read committed bookings: %v", ErrInternal, err)
	}

	busy := make([]domain.Interval, 0, len(preExisting)+len(committed))
	busy = append(busy, preExisting...)
	busy = append(busy, committed...)

	return busy, nil
}

// toResponseSlots конвертирует доменные слоты в модель ответа
func toResponseSlots(slots []domain.Slot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			StartTime: s.Start,
			EndTime:   s.End,
			Available: s.Available,
		}
	}
	return result
}
