package domain

import (
	"github.com/m04kA/MDC-AppointmentService/pkg/types"
)

// Interval is a (start, end) time-of-day pair within one calendar date,
// start strictly before end.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps reports whether two intervals conflict under half-open semantics:
// a.Start < b.End && b.Start < a.End. Touching endpoints do not conflict.
func Overlaps(a, b Interval) bool {
	return a.Start.IsBefore(b.End) && b.Start.IsBefore(a.End)
}

// Slot is a computed candidate interval with a derived availability flag.
// Slots are values, not entities: they are regenerated on every read and have
// no identity beyond (Start, End).
type Slot struct {
	Interval
	Available bool
}

// GenerateSlots builds the candidate slot grid for one day.
//
// The grid is anchored at window.Open and steps forward by durationMinutes;
// the last partial slot that would extend past window.Close is discarded.
// Each slot is available iff no busy interval overlaps it. The result is
// ordered by ascending start time and fully determined by its inputs.
func GenerateSlots(window DayWindow, durationMinutes int, busy []Interval) []Slot {
	if durationMinutes <= 0 {
		return []Slot{}
	}

	slots := make([]Slot, 0)
	cursor := window.Open

	for cursor.IsBefore(window.Close) {
		slotEnd, err := cursor.AddMinutes(durationMinutes)
		if err != nil {
			// Окно уже провалидировано, ошибка возможна только при выходе
			// за границу суток - такой слот точно не влезает до закрытия
			break
		}
		if slotEnd.IsAfter(window.Close) {
			break
		}

		candidate := Interval{Start: cursor, End: slotEnd}

		slots = append(slots, Slot{
			Interval:  candidate,
			Available: !overlapsAny(candidate, busy),
		})

		cursor = slotEnd
	}

	return slots
}

func overlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(candidate, b) {
			return true
		}
	}
	return false
}
