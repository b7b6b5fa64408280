package schedule

import (
	"sort"
	"time"
)

// DateLayout is the calendar date format used for occurrences and bookings.
const DateLayout = "2006-01-02"

// Reference is the explicit "now" the resolver works against.
type Reference struct {
	Weekday time.Weekday
	Time    string    // "HH:MM"
	Date    time.Time // midnight of the reference day, in its own location
}

// ReferenceAt builds a Reference from the local calendar fields of t.
func ReferenceAt(t time.Time) Reference {
	return Reference{
		Weekday: t.Weekday(),
		Time:    TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}.String(),
		Date:    truncateToDay(t),
	}
}

// Occurrence is one concrete, dated instance of a recurring slot.
type Occurrence struct {
	ClassID string
	Date    string // "YYYY-MM-DD"
	Time    string // "HH:MM"
	End     string // "HH:MM"
}

// ResolveNext returns the next occurrence of a class given its weekly slots.
// Malformed slots are ignored; the boolean is false when no valid slot
// remains.
//
// The first slot later this week wins. When every slot has already passed,
// the week wraps and the earliest slot by (day, start) is used.
func ResolveNext(classID string, slots []RecurringSlot, ref Reference) (Occurrence, bool) {
	candidates := orderedSlots(slots)
	if len(candidates) == 0 {
		return Occurrence{}, false
	}

	selected := candidates[0]
	for _, s := range candidates {
		if (s.Day == ref.Weekday && s.Start > ref.Time) || s.Day > ref.Weekday {
			selected = s
			break
		}
	}

	daysUntil := int(selected.Day - ref.Weekday)
	if daysUntil < 0 || (daysUntil == 0 && selected.Start <= ref.Time) {
		daysUntil += 7
	}

	date := ref.Date
	d := time.Date(date.Year(), date.Month(), date.Day()+daysUntil, 0, 0, 0, 0, date.Location())
	formatted := d.Format(DateLayout)
	if _, err := time.ParseInLocation(DateLayout, formatted, d.Location()); err != nil {
		return Occurrence{}, false
	}

	return Occurrence{
		ClassID: classID,
		Date:    formatted,
		Time:    selected.Start,
		End:     selected.End,
	}, true
}

// ResolveAll resolves the next occurrence of every class and returns them
// sorted by date, then time. Classes without a usable slot are skipped.
func ResolveAll(classes []ClassSlots, ref Reference) []Occurrence {
	result := make([]Occurrence, 0, len(classes))
	for _, c := range classes {
		if occ, ok := ResolveNext(c.ClassID, c.Slots, ref); ok {
			result = append(result, occ)
		}
	}
	SortOccurrences(result)
	return result
}

// Upcoming returns at most n occurrences. n <= 0 means no limit.
func Upcoming(occs []Occurrence, n int) []Occurrence {
	if n <= 0 || len(occs) <= n {
		return occs
	}
	return occs[:n]
}

// SortOccurrences orders occurrences by (date, time, class id).
func SortOccurrences(occs []Occurrence) {
	sort.SliceStable(occs, func(i, j int) bool {
		if occs[i].Date != occs[j].Date {
			return occs[i].Date < occs[j].Date
		}
		if occs[i].Time != occs[j].Time {
			return occs[i].Time < occs[j].Time
		}
		return occs[i].ClassID < occs[j].ClassID
	})
}

// orderedSlots drops malformed slots, normalizes times and sorts the rest by
// (day, start). Equal keys keep their input order.
func orderedSlots(slots []RecurringSlot) []RecurringSlot {
	out := make([]RecurringSlot, 0, len(slots))
	for _, s := range slots {
		if !s.Valid() {
			continue
		}
		s.Start = NormalizeTime(s.Start)
		s.End = NormalizeTime(s.End)
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Start < out[j].Start
	})
	return out
}
