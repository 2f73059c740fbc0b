package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
	"github.com/m04kA/MDC-AppointmentService/pkg/types"
)

func ts(s string) types.TimeString {
	return types.TimeString(s)
}

func newBooking(id, date, start, end string) *domain.Booking {
	day, _ := time.Parse(domain.DateFormat, date)
	return &domain.Booking{
		ID:               id,
		ConfirmationCode: "ABC123",
		AppointmentType:  domain.TypeConsultation,
		Date:             day,
		StartTime:        ts(start),
		EndTime:          ts(end),
		Status:           domain.StatusConfirmed,
		Patient:          domain.Patient{Name: "Иванов Иван", Email: "ivanov@example.com", Phone: "+70000000001"},
	}
}

func TestStore_CreateAndGetByID(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	created, err := store.Create(ctx, newBooking("APPT-1", "2026-08-24", "09:00", "09:30"))
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.GetByID(ctx, "APPT-1")
	require.NoError(t, err)
	assert.Equal(t, "APPT-1", got.ID)
	assert.Equal(t, created.StartTime, got.StartTime)

	_, err = store.GetByID(ctx, "APPT-missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestStore_DuplicateID(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Create(ctx, newBooking("APPT-1", "2026-08-24", "09:00", "09:30"))
	require.NoError(t, err)

	_, err = store.Create(ctx, newBooking("APPT-1", "2026-08-24", "10:00", "10:30"))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestStore_CommittedIntervals(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	date, _ := time.Parse(domain.DateFormat, "2026-08-24")

	// Создаём в обратном хронологическом порядке
	_, err := store.Create(ctx, newBooking("APPT-2", "2026-08-24", "14:00", "14:30"))
	require.NoError(t, err)
	_, err = store.Create(ctx, newBooking("APPT-1", "2026-08-24", "09:00", "09:30"))
	require.NoError(t, err)
	_, err = store.Create(ctx, newBooking("APPT-3", "2026-08-25", "09:00", "09:30"))
	require.NoError(t, err)

	intervals, err := store.CommittedIntervals(ctx, date)
	require.NoError(t, err)
	require.Len(t, intervals, 2)

	// Интервалы чужой даты не попадают, порядок - по времени начала
	assert.Equal(t, ts("09:00"), intervals[0].Start)
	assert.Equal(t, ts("14:00"), intervals[1].Start)
}

func TestStore_GetByDate(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	date, _ := time.Parse(domain.DateFormat, "2026-08-24")

	list, err := store.GetByDate(ctx, date)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = store.Create(ctx, newBooking("APPT-1", "2026-08-24", "11:00", "11:30"))
	require.NoError(t, err)
	_, err = store.Create(ctx, newBooking("APPT-2", "2026-08-24", "09:00", "09:30"))
	require.NoError(t, err)

	list, err = store.GetByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "APPT-2", list[0].ID)
	assert.Equal(t, "APPT-1", list[1].ID)
}

func TestStore_IndependentInstances(t *testing.T) {
	// Каждый экземпляр владеет своим состоянием: тесты не влияют друг на друга
	first := NewStore()
	second := NewStore()
	ctx := context.Background()
	date, _ := time.Parse(domain.DateFormat, "2026-08-24")

	_, err := first.Create(ctx, newBooking("APPT-1", "2026-08-24", "09:00", "09:30"))
	require.NoError(t, err)

	intervals, err := second.CommittedIntervals(ctx, date)
	require.NoError(t, err)
	assert.Empty(t, intervals)
}
