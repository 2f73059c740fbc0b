package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/MDC-AppointmentService/internal/domain"
	"github.com/m04kA/MDC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/MDC-AppointmentService/pkg/types"
)

// Repository поставщик расписания поверх PostgreSQL.
// Читает таблицы working_hours и existing_bookings; только чтение,
// запись в расписание вне зоны ответственности сервиса.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a schedule repository over the given executor.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// WorkingHours returns the working-hours window for the weekday,
// or nil when no row exists (closed that day).
func (r *Repository) WorkingHours(ctx context.Context, weekday time.Weekday) (*domain.DayWindow, error) {
	query, args, err := psqlbuilder.Select(
		"open_time",
		"close_time",
	).
		From("working_hours").
		Where(squirrel.Eq{"weekday": weekdayKey(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: WorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	var open, close types.TimeString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&open, &close)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: WorkingHours - scan window: %v", ErrScheduleUnavailable, err)
	}

	window := domain.DayWindow{Open: open, Close: close}
	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("%w: WorkingHours - invalid window: %v", ErrScheduleUnavailable, err)
	}

	return &window, nil
}

// PreExistingBookings returns the externally sourced committed intervals
// for the given date, ordered by start time.
func (r *Repository) PreExistingBookings(ctx context.Context, date time.Time) ([]domain.Interval, error) {
	query, args, err := psqlbuilder.Select(
		"start_time",
		"end_time",
	).
		From("existing_bookings").
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: PreExistingBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: PreExistingBookings - execute select: %v", ErrScheduleUnavailable, err)
	}
	defer rows.Close()

	intervals := make([]domain.Interval, 0)
	for rows.Next() {
		var interval domain.Interval
		if err := rows.Scan(&interval.Start, &interval.End); err != nil {
			return nil, fmt.Errorf("%w: PreExistingBookings - scan interval: %v", ErrScanRow, err)
		}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: PreExistingBookings - iterate rows: %v", ErrScheduleUnavailable, err)
	}

	return intervals, nil
}

func weekdayKey(weekday time.Weekday) string {
	switch weekday {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	case time.Sunday:
		return "sunday"
	default:
		return ""
	}
}
