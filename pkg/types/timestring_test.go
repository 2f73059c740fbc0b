package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:00"},
		{name: "valid midnight", input: "00:00"},
		{name: "valid end of day", input: "23:59"},
		{name: "not zero padded", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "10:60", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "with seconds", input: "09:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		minutes int
		want    string
		wantErr error
	}{
		{name: "within hour", start: "09:00", minutes: 30, want: "09:30"},
		{name: "across hour", start: "09:45", minutes: 30, want: "10:15"},
		{name: "zero", start: "09:00", minutes: 0, want: "09:00"},
		{name: "negative", start: "09:30", minutes: -15, want: "09:15"},
		{name: "crosses midnight", start: "23:45", minutes: 30, wantErr: ErrOutOfDayRange},
		{name: "exactly midnight", start: "23:30", minutes: 30, wantErr: ErrOutOfDayRange},
		{name: "before day start", start: "00:10", minutes: -20, wantErr: ErrOutOfDayRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.start)
			require.NoError(t, err)

			got, err := ts.AddMinutes(tt.minutes)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("17:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(late))
	assert.False(t, early.IsBefore(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_MinutesUntil(t *testing.T) {
	from := TimeString("09:00")
	to := TimeString("10:30")

	minutes, err := from.MinutesUntil(to)
	require.NoError(t, err)
	assert.Equal(t, 90, minutes)

	minutes, err = to.MinutesUntil(from)
	require.NoError(t, err)
	assert.Equal(t, -90, minutes)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 8, 24, 9, 5, 59, 0, time.Local)
	assert.Equal(t, "09:05", NewTimeString(moment).String())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, "09:30", ts.String())

	require.NoError(t, ts.Scan([]byte("10:15")))
	assert.Equal(t, "10:15", ts.String())

	require.Error(t, ts.Scan(42))
}
