package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/MDC-AppointmentService/pkg/types"
)

// DayWindow represents the working-hours window for one weekday.
// The window is half-open in practice: a slot may end exactly at Close.
type DayWindow struct {
	Open  types.TimeString
	Close types.TimeString
}

// Validate checks both bounds and the open < close invariant.
func (w DayWindow) Validate() error {
	if err := w.Open.Validate(); err != nil {
		return fmt.Errorf("day window open: %w", err)
	}
	if err := w.Close.Validate(); err != nil {
		return fmt.Errorf("day window close: %w", err)
	}
	if !w.Open.IsBefore(w.Close) {
		return fmt.Errorf("day window: open %s must be before close %s", w.Open, w.Close)
	}
	return nil
}

// WeekSchedule holds the optional working-hours window per weekday.
// A nil entry means the provider is closed that day.
type WeekSchedule struct {
	Monday    *DayWindow
	Tuesday   *DayWindow
	Wednesday *DayWindow
	Thursday  *DayWindow
	Friday    *DayWindow
	Saturday  *DayWindow
	Sunday    *DayWindow
}

// ForWeekday returns the window for the given weekday, or nil when closed.
func (s *WeekSchedule) ForWeekday(weekday time.Weekday) *DayWindow {
	switch weekday {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	default:
		return nil
	}
}
