package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
	bookingStore "github.com/m04kA/MDC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/MDC-AppointmentService/pkg/types"
)

type stubScheduleProvider struct {
	window      *domain.DayWindow
	windowErr   error
	preExisting []domain.Interval
	bookingsErr error
}

func (s *stubScheduleProvider) WorkingHours(_ context.Context, _ time.Weekday) (*domain.DayWindow, error) {
	return s.window, s.windowErr
}

func (s *stubScheduleProvider) PreExistingBookings(_ context.Context, _ time.Time) ([]domain.Interval, error) {
	return s.preExisting, s.bookingsErr
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return date
}

func TestExecute_GeneratesSlots(t *testing.T) {
	schedule := &stubScheduleProvider{
		window: &domain.DayWindow{Open: "09:00", Close: "10:00"},
	}
	uc := NewUseCase(schedule, bookingStore.NewStore(), noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            mustDate(t, "2026-08-24"), // понедельник
		AppointmentType: domain.TypeConsultation,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)

	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:30"), resp.Slots[0].EndTime)
	assert.True(t, resp.Slots[0].Available)

	assert.Equal(t, types.TimeString("09:30"), resp.Slots[1].StartTime)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[1].EndTime)
	assert.True(t, resp.Slots[1].Available)

	// Эхо запроса
	assert.Equal(t, domain.TypeConsultation, resp.AppointmentType)
	assert.Equal(t, mustDate(t, "2026-08-24"), resp.Date)
}

func TestExecute_ClosedDay(t *testing.T) {
	schedule := &stubScheduleProvider{window: nil}
	uc := NewUseCase(schedule, bookingStore.NewStore(), noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            mustDate(t, "2026-08-23"), // воскресенье
		AppointmentType: domain.TypeConsultation,
	})
	require.NoError(t, err)

	// Выходной - пустой список, не ошибка
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UnknownAppointmentType(t *testing.T) {
	schedule := &stubScheduleProvider{
		window: &domain.DayWindow{Open: "09:00", Close: "17:00"},
	}
	uc := NewUseCase(schedule, bookingStore.NewStore(), noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:            mustDate(t, "2026-08-24"),
		AppointmentType: domain.AppointmentType("surgery"),
	})
	assert.ErrorIs(t, err, ErrUnknownAppointmentType)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&stubScheduleProvider{}, bookingStore.NewStore(), noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentType: domain.TypeConsultation,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ScheduleUnavailable(t *testing.T) {
	readErr := errors.New("file: schedule is unavailable")

	uc := NewUseCase(&stubScheduleProvider{windowErr: readErr}, bookingStore.NewStore(), noopLogger{})
	_, err := uc.Execute(context.Background(), &Request{
		Date:            mustDate(t, "2026-08-24"),
		AppointmentType: domain.TypeConsultation,
	})
	assert.ErrorIs(t, err, ErrScheduleUnavailable)

	// Ошибка чтения внешних бронирований тоже не маскируется
	uc = NewUseCase(&stubScheduleProvider{
		window:      &domain.DayWindow{Open: "09:00", Close: "17:00"},
		bookingsErr: readErr,
	}, bookingStore.NewStore(), noopLogger{})
	_, err = uc.Execute(context.Background(), &Request{
		Date:            mustDate(t, "2026-08-24"),
		AppointmentType: domain.TypeConsultation,
	})
	assert.ErrorIs(t, err, ErrScheduleUnavailable)
}

func TestExecute_MergesBusySources(t *testing.T) {
	schedule := &stubScheduleProvider{
		window:      &domain.DayWindow{Open: "09:00", Close: "11:00"},
		preExisting: []domain.Interval{{Start: "09:30", End: "10:00"}},
	}
	store := bookingStore.NewStore()
	date := mustDate(t, "2026-08-24")

	_, err := store.Create(context.Background(), &domain.Booking{
		ID:              "APPT-20260824-TEST0001",
		AppointmentType: domain.TypeConsultation,
		Date:            date,
		StartTime:       "10:30",
		EndTime:         "11:00",
		Status:          domain.StatusConfirmed,
		Patient:         domain.Patient{Name: "Петров Пётр", Email: "petrov@example.com", Phone: "+70000000002"},
	})
	require.NoError(t, err)

	uc := NewUseCase(schedule, store, noopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		Date:            date,
		AppointmentType: domain.TypeConsultation,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	// Занят и внешний интервал, и runtime-бронирование
	assert.True(t, resp.Slots[0].Available)  // 09:00-09:30
	assert.False(t, resp.Slots[1].Available) // 09:30-10:00, внешнее расписание
	assert.True(t, resp.Slots[2].Available)  // 10:00-10:30
	assert.False(t, resp.Slots[3].Available) // 10:30-11:00, runtime-хранилище
}

func TestExecute_ReadOnly(t *testing.T) {
	// Повторные запросы не меняют состояние: ответ стабилен
	schedule := &stubScheduleProvider{
		window:      &domain.DayWindow{Open: "09:00", Close: "17:00"},
		preExisting: []domain.Interval{{Start: "14:00", End: "15:00"}},
	}
	uc := NewUseCase(schedule, bookingStore.NewStore(), noopLogger{})
	req := &Request{Date: mustDate(t, "2026-08-24"), AppointmentType: domain.TypeFollowup}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
}
