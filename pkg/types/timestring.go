package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TimeFormat layout used for all time-of-day values ("HH:MM").
const TimeFormat = "15:04"

const minutesPerDay = 24 * 60

var (
	// ErrInvalidFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrOutOfDayRange возвращается, когда результат арифметики выходит за границы суток
	ErrOutOfDayRange = errors.New("types: time is out of day range")
)

// TimeString represents a time of day as a zero-padded "HH:MM" string.
// The zero-padded format makes lexicographic order equal to chronological
// order, so comparisons work directly on the underlying string.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a well-formed zero-padded HH:MM time.
func (t TimeString) Validate() error {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	// time.Parse принимает незаполненные нулями значения ("9:00"),
	// но тогда ломается лексикографическое сравнение
	if parsed.Format(TimeFormat) != string(t) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Fails if the value is malformed or the result would cross midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.minutesOfDay()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s + %dm", ErrOutOfDayRange, string(t), minutes)
	}
	if total == minutesPerDay {
		// Полночь конца суток непредставима в HH:MM
		return "", fmt.Errorf("%w: %s + %dm", ErrOutOfDayRange, string(t), minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// MinutesUntil returns the number of minutes from t to other (negative when
// other is earlier).
func (t TimeString) MinutesUntil(other TimeString) (int, error) {
	from, err := t.minutesOfDay()
	if err != nil {
		return 0, err
	}
	to, err := other.minutesOfDay()
	if err != nil {
		return 0, err
	}
	return to - from, nil
}

func (t TimeString) minutesOfDay() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	parsed, _ := time.Parse(TimeFormat, string(t))
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// String returns the raw HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// MarshalJSON implements json.Marshaler.
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON implements json.Unmarshaler with format validation.
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

// Value implements driver.Valuer for SQL storage.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Accepts TIME columns truncated to HH:MM.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		if len(v) > 5 {
			v = v[:5] // "HH:MM:SS" -> "HH:MM"
		}
		ts, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = ts
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidFormat, src)
	}
}
