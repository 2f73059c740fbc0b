package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
	"github.com/m04kA/MDC-AppointmentService/pkg/types"
)

// UseCase use case для создания бронирования.
// Проверка доступности и коммит выполняются под эксклюзивной блокировкой
// даты, чтобы два конкурентных запроса не забронировали один слот.
type UseCase struct {
	schedule     ScheduleProvider
	store        BookingStore
	dateLock     DateLocker
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	schedule ScheduleProvider,
	store BookingStore,
	dateLock DateLocker,
	logger Logger,
) *UseCase {
	return &UseCase{
		schedule:     schedule,
		store:        store,
		dateLock:     dateLock,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, type=%s, patient=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.AppointmentType, req.Patient.Name)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	duration, _ := req.AppointmentType.DurationMinutes()

	// 2. Вычисляем конец запрошенного интервала.
	// Выход за границу суток означает, что интервал заведомо не лежит на сетке
	requestedEnd, err := req.StartTime.AddMinutes(duration)
	if err != nil {
		uc.logger.Warn("CreateBooking: requested interval crosses midnight: %v", err)
		return nil, ErrOutsideWorkingHours
	}

	var result *domain.Booking

	// 3-6. Check-then-act: перегенерация сетки, поиск слота, проверка
	// доступности и коммит выполняются как одна критическая секция по дате.
	// Блокировка снимается на всех путях выхода, включая ошибки валидации
	err = uc.dateLock.WithDate(ctx, req.Date, func(lockCtx context.Context) error {
		// 3.1. Получаем окно рабочих часов
		window, err := uc.schedule.WorkingHours(lockCtx, req.Date.Weekday())
		if err != nil {
			uc.logger.Error("CreateBooking: failed to read working hours: %v", err)
			return fmt.Errorf("%w: failed to read working hours: %v", ErrScheduleUnavailable, err)
		}

		// Выходной день - запрошенное время не попадает ни на один слот
		if window == nil {
			uc.logger.Warn("CreateBooking: closed on %s", req.Date.Format(domain.DateFormat))
			return ErrOutsideWorkingHours
		}

		// 3.2. Собираем занятые интервалы из обоих источников
		busy, err := uc.collectBusyIntervals(lockCtx, req)
		if err != nil {
			return err
		}

		// 3.3. Перегенерируем сетку слотов. Сетка детерминирована, поэтому
		// запрошенный интервал ищется по значению (start, end), без ID
		slots := domain.GenerateSlots(*window, duration, busy)

		slot, found := findSlot(slots, req.StartTime, requestedEnd)
		if !found {
			uc.logger.Warn("CreateBooking: requested time %s-%s is not on the slot grid",
				req.StartTime, requestedEnd)
			return ErrOutsideWorkingHours
		}

		// 3.4. Проверяем доступность
		if !slot.Available {
			uc.logger.Warn("CreateBooking: slot %s-%s is already taken", req.StartTime, requestedEnd)
			return ErrSlotConflict
		}

		// 3.5. Коммитим бронирование
		now := uc.timeProvider.Now()
		booking := &domain.Booking{
			ID:               newBookingID(now),
			ConfirmationCode: newConfirmationCode(),
			AppointmentType:  req.AppointmentType,
			Date:             req.Date,
			StartTime:        req.StartTime,
			EndTime:          requestedEnd,
			Status:           domain.StatusConfirmed,
			Patient:          req.Patient,
			Reason:           req.Reason,
		}

		created, err := uc.store.Create(lockCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to store booking: %v", err)
			return fmt.Errorf("%w: failed to store booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: confirmed booking id=%s, date=%s, time=%s-%s",
		result.ID, result.Date.Format(domain.DateFormat), result.StartTime, result.EndTime)

	return &Response{
		BookingID:        result.ID,
		ConfirmationCode: result.ConfirmationCode,
		Status:           string(result.Status),
		AppointmentType:  result.AppointmentType,
		Date:             result.Date,
		StartTime:        result.StartTime,
		EndTime:          result.EndTime,
		Patient:          result.Patient,
		Reason:           result.Reason,
		CreatedAt:        result.CreatedAt,
	}, nil
}

func (uc *UseCase) collectBusyIntervals(ctx context.Context, req *Request) ([]domain.Interval, error) {
	preExisting, err := uc.schedule.PreExistingBookings(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to read pre-existing bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to read pre-existing bookings: %v", ErrScheduleUnavailable, err)
	}

	committed, err := uc.store.CommittedIntervals(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to read committed bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to read committed bookings: %v", ErrInternal, err)
	}

	busy := make([]domain.Interval, 0, len(preExisting)+len(committed))
	busy = append(busy, preExisting...)
	busy = append(busy, committed...)

	return busy, nil
}

// findSlot ищет слот с точно совпадающими (start, end)
func findSlot(slots []domain.Slot, start, end types.TimeString) (domain.Slot, bool) {
	for _, s := range slots {
		if s.Start == start && s.End == end {
			return s, true
		}
	}
	return domain.Slot{}, false
}
