package schedule

import (
	"time"

	"github.com/teambition/rrule-go"
)

// Expand evaluates every class's weekly slots into concrete occurrences
// between from and to (inclusive). Occurrences on from's day that start at
// or before from's time of day are left out. Malformed slots are skipped.
// The result is sorted like ResolveAll.
func Expand(classes []ClassSlots, from, to time.Time) ([]Occurrence, error) {
	if to.Before(from) {
		return nil, nil
	}

	ref := ReferenceAt(from)
	// Walk whole days so the rule's DTSTART never clips a slot on the first day.
	dayStart := truncateToDay(from)
	dayEnd := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, to.Location())

	var result []Occurrence
	for _, c := range classes {
		for _, s := range orderedSlots(c.Slots) {
			r, err := rrule.NewRRule(rrule.ROption{
				Freq:      rrule.WEEKLY,
				Byweekday: []rrule.Weekday{rruleWeekdays[s.Day]},
				Dtstart:   dayStart,
			})
			if err != nil {
				return nil, err
			}

			for _, d := range r.Between(dayStart, dayEnd, true) {
				date := d.Format(DateLayout)
				if date == ref.Date.Format(DateLayout) && s.Start <= ref.Time {
					continue
				}
				if date == to.Format(DateLayout) && s.Start > (TimeOfDay{Hour: to.Hour(), Minute: to.Minute()}).String() {
					continue
				}
				result = append(result, Occurrence{
					ClassID: c.ClassID,
					Date:    date,
					Time:    s.Start,
					End:     s.End,
				})
			}
		}
	}

	SortOccurrences(result)
	return result, nil
}
