package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
	"github.com/m04kA/MDC-AppointmentService/pkg/types"
)

// Repository поставщик расписания поверх JSON-файла.
// Файл перечитывается на каждый запрос: данные считаются актуальными
// "до следующего чтения", кеширование не используется.
type Repository struct {
	path string
}

// NewRepository creates a schedule repository backed by the JSON file at path.
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// scheduleDocument формат файла расписания
type scheduleDocument struct {
	WorkingHours     map[string]dayWindowDocument `json:"working_hours"`
	ExistingBookings []existingBookingDocument    `json:"existing_bookings"`
}

type dayWindowDocument struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type existingBookingDocument struct {
	Date      string `json:"date"`       // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM
}

// WorkingHours returns the working-hours window for the weekday,
// or nil when the provider is closed that day.
func (r *Repository) WorkingHours(_ context.Context, weekday time.Weekday) (*domain.DayWindow, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	schedule, err := toWeekSchedule(doc.WorkingHours)
	if err != nil {
		return nil, err
	}

	return schedule.ForWeekday(weekday), nil
}

// PreExistingBookings returns the externally sourced committed intervals
// for the given date.
func (r *Repository) PreExistingBookings(_ context.Context, date time.Time) ([]domain.Interval, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	dateStr := date.Format(domain.DateFormat)
	intervals := make([]domain.Interval, 0)

	for _, entry := range doc.ExistingBookings {
		if entry.Date != dateStr {
			continue
		}

		start, err := types.NewTimeStringFromString(entry.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: booking on %s: %v", ErrInvalidSchedule, entry.Date, err)
		}
		end, err := types.NewTimeStringFromString(entry.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: booking on %s: %v", ErrInvalidSchedule, entry.Date, err)
		}

		intervals = append(intervals, domain.Interval{Start: start, End: end})
	}

	return intervals, nil
}

func (r *Repository) load() (*scheduleDocument, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrScheduleUnavailable, r.path, err)
	}

	var doc scheduleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrScheduleUnavailable, r.path, err)
	}

	return &doc, nil
}

// toWeekSchedule валидирует все окна документа целиком: битое окно любого
// дня делает файл некорректным, а не только запросы на этот день
func toWeekSchedule(entries map[string]dayWindowDocument) (*domain.WeekSchedule, error) {
	schedule := &domain.WeekSchedule{}

	for key, entry := range entries {
		window, err := toDayWindow(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: weekday %s: %v", ErrInvalidSchedule, key, err)
		}

		switch key {
		case "monday":
			schedule.Monday = window
		case "tuesday":
			schedule.Tuesday = window
		case "wednesday":
			schedule.Wednesday = window
		case "thursday":
			schedule.Thursday = window
		case "friday":
			schedule.Friday = window
		case "saturday":
			schedule.Saturday = window
		case "sunday":
			schedule.Sunday = window
		default:
			return nil, fmt.Errorf("%w: unknown weekday key %q", ErrInvalidSchedule, key)
		}
	}

	return schedule, nil
}

func toDayWindow(entry dayWindowDocument) (*domain.DayWindow, error) {
	open, err := types.NewTimeStringFromString(entry.Start)
	if err != nil {
		return nil, err
	}
	close, err := types.NewTimeStringFromString(entry.End)
	if err != nil {
		return nil, err
	}

	window := domain.DayWindow{Open: open, Close: close}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	return &window, nil
}
