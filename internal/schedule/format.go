package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatTimeRange formats "HH:MM" times into "H:MM AM - H:MM PM".
func FormatTimeRange(from, to string) string {
	return fmt.Sprintf("%s - %s", Format12h(from), Format12h(to))
}

// FormatWeekday returns the English name of a weekday, or "?" for NoDay.
func FormatWeekday(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return "?"
	}
	return d.String()
}

// FormatSlots renders a class's slots grouped by time range, e.g.
// "Mon, Wed 9:00 AM - 10:00 AM; Sat 10:00 AM - 11:30 AM".
func FormatSlots(slots []RecurringSlot) string {
	ordered := orderedSlots(slots)
	if len(ordered) == 0 {
		return "no slots"
	}

	var keys []string
	days := make(map[string][]string)
	for _, s := range ordered {
		key := FormatTimeRange(s.Start, s.End)
		if _, ok := days[key]; !ok {
			keys = append(keys, key)
		}
		days[key] = append(days[key], s.Day.String()[:3])
	}

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s %s", strings.Join(days[k], ", "), k)
	}
	return strings.Join(parts, "; ")
}

// FormatDate renders a "YYYY-MM-DD" date as "Mon Jan 2". Unparseable input
// is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon Jan 2")
}

// Format12h converts "HH:MM" to "H:MM AM/PM".
func Format12h(hhmm string) string {
	parts := strings.SplitN(NormalizeTime(hhmm), ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return hhmm
	}
	m := parts[1]

	suffix := "AM"
	display := h
	if h == 0 {
		display = 12
	} else if h == 12 {
		suffix = "PM"
	} else if h > 12 {
		display = h - 12
		suffix = "PM"
	}

	return fmt.Sprintf("%d:%s %s", display, m, suffix)
}
