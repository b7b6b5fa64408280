package schedule

import (
	"fmt"
	"strings"
)

// ParseSlots parses a natural language slot definition into recurring slots,
// one per weekday it covers.
// It expects the format: "from <time> to <time> <recurrence>", for example
// "from 9am to 10am every monday and wednesday" or
// "from 18:00 to 19:00 FREQ=WEEKLY;BYDAY=TU,TH".
func ParseSlots(input string) ([]RecurringSlot, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	fromTime, toTime, remainder, err := extractTimes(normalized)
	if err != nil {
		return nil, err
	}
	if !fromTime.Before(toTime) {
		return nil, fmt.Errorf("start time %s must be before end time %s", fromTime, toTime)
	}

	remainder = strings.TrimSpace(remainder)
	if remainder == "" {
		return nil, fmt.Errorf("expected a recurrence after the time range (e.g. 'every monday')")
	}

	days, err := SlotsFromRecurrence(remainder)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence: %w", err)
	}

	slots := make([]RecurringSlot, len(days))
	for i, d := range days {
		slots[i] = RecurringSlot{Day: d, Start: fromTime.String(), End: toTime.String()}
	}
	return slots, nil
}

// extractTimes parses "from <time> to <time> ..." and returns the two times
// plus the remaining string after the "to <time>" segment.
func extractTimes(s string) (TimeOfDay, TimeOfDay, string, error) {
	if !strings.HasPrefix(s, "from ") {
		return TimeOfDay{}, TimeOfDay{}, "", fmt.Errorf("expected 'from <time> to <time>', got %q", s)
	}

	afterFrom := s[len("from "):]

	toIdx := strings.Index(afterFrom, " to ")
	if toIdx == -1 {
		return TimeOfDay{}, TimeOfDay{}, "", fmt.Errorf("expected 'to <time>' in %q", s)
	}

	fromStr := strings.TrimSpace(afterFrom[:toIdx])
	afterTo := strings.TrimSpace(afterFrom[toIdx+len(" to "):])

	fromTime, err := parseTimeOfDay(fromStr)
	if err != nil {
		return TimeOfDay{}, TimeOfDay{}, "", fmt.Errorf("invalid start time %q: %w", fromStr, err)
	}

	toStr, remainder := splitTimeAndRemainder(afterTo)

	toTime, err := parseTimeOfDay(toStr)
	if err != nil {
		return TimeOfDay{}, TimeOfDay{}, "", fmt.Errorf("invalid end time %q: %w", toStr, err)
	}

	return fromTime, toTime, remainder, nil
}

// splitTimeAndRemainder splits "5pm every weekday" into ("5pm", "every weekday").
// A trailing "am"/"pm" token separated by a space stays with the time.
func splitTimeAndRemainder(s string) (string, string) {
	parts := strings.SplitN(s, " ", 3)
	switch {
	case len(parts) == 1:
		return parts[0], ""
	case parts[1] == "am" || parts[1] == "pm":
		if len(parts) == 2 {
			return parts[0] + parts[1], ""
		}
		return parts[0] + parts[1], parts[2]
	case len(parts) == 2:
		return parts[0], parts[1]
	default:
		return parts[0], parts[1] + " " + parts[2]
	}
}
