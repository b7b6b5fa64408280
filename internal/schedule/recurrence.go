package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// parseRecurrence parses a natural language or raw RRULE recurrence string.
func parseRecurrence(s string) (*rrule.RRule, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if isRawRRule(s) {
		raw := strings.ToUpper(s)
		raw = strings.TrimPrefix(raw, "RRULE:")
		r, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RRULE %q: %w", raw, err)
		}
		return r, nil
	}

	switch s {
	case "every day", "daily":
		return rrule.NewRRule(rrule.ROption{
			Freq: rrule.DAILY,
		})

	case "every weekday", "weekdays":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
		})

	case "every weekend", "weekends":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.SA, rrule.SU},
		})
	}

	// "every monday", "every monday and wednesday", "every mon, wed, fri"
	if strings.HasPrefix(s, "every ") {
		list := strings.TrimPrefix(s, "every ")
		list = strings.ReplaceAll(list, " and ", ",")
		var days []rrule.Weekday
		for _, name := range strings.Split(list, ",") {
			wd, ok := ParseWeekday(name)
			if !ok {
				return nil, fmt.Errorf("unrecognized recurrence %q", s)
			}
			days = append(days, rruleWeekdays[wd])
		}
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: days,
		})
	}

	return nil, fmt.Errorf("unrecognized recurrence %q", s)
}

// SlotsFromRecurrence returns the weekdays a recurrence expression covers.
// Only rules that repeat every week can be stored as class slots.
func SlotsFromRecurrence(expr string) ([]time.Weekday, error) {
	r, err := parseRecurrence(expr)
	if err != nil {
		return nil, err
	}
	return weekdaysOf(r.OrigOptions)
}

func weekdaysOf(opts rrule.ROption) ([]time.Weekday, error) {
	if opts.Interval > 1 {
		return nil, fmt.Errorf("class slots must repeat every week, got interval %d", opts.Interval)
	}
	if opts.Count > 0 || !opts.Until.IsZero() {
		return nil, fmt.Errorf("class slots cannot be bounded by COUNT or UNTIL")
	}

	switch opts.Freq {
	case rrule.DAILY:
		if len(opts.Byweekday) == 0 {
			return []time.Weekday{
				time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
				time.Thursday, time.Friday, time.Saturday,
			}, nil
		}
	case rrule.WEEKLY:
		if len(opts.Byweekday) == 0 {
			return nil, fmt.Errorf("weekly recurrence needs at least one BYDAY")
		}
	default:
		return nil, fmt.Errorf("unsupported frequency %s for class slots", opts.Freq)
	}

	seen := make(map[time.Weekday]bool, len(opts.Byweekday))
	days := make([]time.Weekday, 0, len(opts.Byweekday))
	for _, wd := range opts.Byweekday {
		if wd.N() != 0 {
			return nil, fmt.Errorf("positional weekdays like %s are not weekly", wd.String())
		}
		d := goWeekday(wd)
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days, nil
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// goWeekday maps an rrule weekday (Monday = 0) to time.Weekday (Sunday = 0).
func goWeekday(wd rrule.Weekday) time.Weekday {
	return time.Weekday((wd.Day() + 1) % 7)
}

// isRawRRule returns true if the string looks like a raw RRULE.
func isRawRRule(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "freq=") || strings.HasPrefix(lower, "rrule:")
}
