package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
)

// UseCase use case для получения доступных слотов на дату.
// Чистый по отношению к хранилищу: только читает, никогда не пишет.
type UseCase struct {
	schedule ScheduleProvider
	store    BookingStore
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedule ScheduleProvider, store BookingStore, logger Logger) *UseCase {
	return &UseCase{
		schedule: schedule,
		store:    store,
		logger:   logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, type=%s",
		req.Date.Format(domain.DateFormat), req.AppointmentType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	duration, _ := req.AppointmentType.DurationMinutes()

	// 2. Получаем окно рабочих часов на день недели
	window, err := uc.schedule.WorkingHours(ctx, req.Date.Weekday())
	if err != nil {
		uc.logger.Error("GetAvailability: failed to read working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to read working hours: %v", ErrScheduleUnavailable, err)
	}

	// Выходной день - пустой список слотов, не ошибка
	if window == nil {
		uc.logger.Info("GetAvailability: closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:            req.Date,
			AppointmentType: req.AppointmentType,
			Slots:           []Slot{},
		}, nil
	}

	// 3. Собираем занятые интервалы из расписания и runtime-хранилища
	busy, err := collectBusyIntervals(ctx, uc.schedule, uc.store, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to collect busy intervals: %v", err)
		return nil, err
	}

	// 4. Генерируем сетку слотов с флагами доступности
	slots := domain.GenerateSlots(*window, duration, busy)

	uc.logger.Info("GetAvailability: generated %d slots for date=%s, type=%s",
		len(slots), req.Date.Format(domain.DateFormat), req.AppointmentType)

	return &Response{
		Date:            req.Date,
		AppointmentType: req.AppointmentType,
		Slots:           toResponseSlots(slots),
	}, nil
}
