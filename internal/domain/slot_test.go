package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MDC-AppointmentService/pkg/types"
)

func interval(start, end string) Interval {
	return Interval{Start: types.TimeString(start), End: types.TimeString(end)}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{name: "partial overlap", a: interval("11:30", "12:00"), b: interval("11:20", "11:40"), want: true},
		{name: "contained", a: interval("09:00", "10:00"), b: interval("09:15", "09:45"), want: true},
		{name: "identical", a: interval("09:00", "09:30"), b: interval("09:00", "09:30"), want: true},
		{name: "touching left", a: interval("11:30", "12:00"), b: interval("11:00", "11:30"), want: false},
		{name: "touching right", a: interval("11:30", "12:00"), b: interval("12:00", "12:30"), want: false},
		{name: "disjoint", a: interval("09:00", "09:30"), b: interval("14:00", "15:00"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestGenerateSlots_Grid(t *testing.T) {
	window := DayWindow{Open: "09:00", Close: "17:00"}

	slots := GenerateSlots(window, 30, nil)
	require.Len(t, slots, 16)

	// Сетка начинается ровно с открытия
	assert.Equal(t, types.TimeString("09:00"), slots[0].Start)

	// Слоты непрерывны, не пересекаются и не выходят за закрытие
	for i, s := range slots {
		minutes, err := s.Start.MinutesUntil(s.End)
		require.NoError(t, err)
		assert.Equal(t, 30, minutes)
		assert.True(t, s.Available)
		assert.False(t, s.End.IsAfter(window.Close))
		if i > 0 {
			assert.Equal(t, slots[i-1].End, s.Start)
		}
	}
}

func TestGenerateSlots_DiscardsPartialSlot(t *testing.T) {
	// 09:00-10:00 не делится на 45 минут нацело: второй слот выходит
	// за закрытие и отбрасывается
	window := DayWindow{Open: "09:00", Close: "10:00"}

	slots := GenerateSlots(window, 45, nil)
	require.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("09:00"), slots[0].Start)
	assert.Equal(t, types.TimeString("09:45"), slots[0].End)
}

func TestGenerateSlots_AvailabilityFlags(t *testing.T) {
	window := DayWindow{Open: "09:00", Close: "11:00"}
	busy := []Interval{
		interval("09:30", "10:00"),
		interval("10:15", "10:20"), // частично перекрывает слот 10:00-10:30
	}

	slots := GenerateSlots(window, 30, busy)
	require.Len(t, slots, 4)

	assert.True(t, slots[0].Available)  // 09:00-09:30, граничит с занятым
	assert.False(t, slots[1].Available) // 09:30-10:00, занят целиком
	assert.False(t, slots[2].Available) // 10:00-10:30, частичное пересечение
	assert.True(t, slots[3].Available)  // 10:30-11:00
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	// Поиск слота при бронировании идёт по значению (start, end),
	// поэтому сетка обязана быть детерминированной
	window := DayWindow{Open: "09:00", Close: "17:00"}
	busy := []Interval{interval("10:00", "10:30"), interval("14:00", "15:00")}

	first := GenerateSlots(window, 30, busy)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, GenerateSlots(window, 30, busy))
	}
}

func TestGenerateSlots_NonPositiveDuration(t *testing.T) {
	window := DayWindow{Open: "09:00", Close: "17:00"}

	assert.Empty(t, GenerateSlots(window, 0, nil))
	assert.Empty(t, GenerateSlots(window, -15, nil))
}

func TestDayWindow_Validate(t *testing.T) {
	assert.NoError(t, DayWindow{Open: "09:00", Close: "17:00"}.Validate())
	assert.Error(t, DayWindow{Open: "17:00", Close: "09:00"}.Validate())
	assert.Error(t, DayWindow{Open: "09:00", Close: "09:00"}.Validate())
	assert.Error(t, DayWindow{Open: "9:00", Close: "17:00"}.Validate())
}

func TestAppointmentType_DurationMinutes(t *testing.T) {
	tests := []struct {
		appointmentType AppointmentType
		duration        int
	}{
		{TypeConsultation, 30},
		{TypeFollowup, 15},
		{TypePhysical, 45},
		{TypeSpecial, 60},
	}

	for _, tt := range tests {
		d, ok := tt.appointmentType.DurationMinutes()
		require.True(t, ok)
		assert.Equal(t, tt.duration, d)
		assert.True(t, tt.appointmentType.IsValid())
	}

	_, ok := AppointmentType("surgery").DurationMinutes()
	assert.False(t, ok)
	assert.False(t, AppointmentType("surgery").IsValid())
}
