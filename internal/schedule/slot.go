package schedule

import (
	"encoding/json"
	"fmt"
	"time"
)

// NoDay marks a slot whose weekday is missing or out of range.
const NoDay time.Weekday = -1

// RecurringSlot is one weekly recurrence rule of a class: a weekday plus a
// start/end time of day. Start and End are "HH:MM" once normalized, so they
// compare correctly as strings.
type RecurringSlot struct {
	Day   time.Weekday
	Start string
	End   string
}

type slotJSON struct {
	DayOfWeek *int   `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// MarshalJSON encodes the slot in the backend's shape (Sunday = 0).
func (s RecurringSlot) MarshalJSON() ([]byte, error) {
	day := int(s.Day)
	return json.Marshal(slotJSON{DayOfWeek: &day, StartTime: s.Start, EndTime: s.End})
}

// UnmarshalJSON decodes a backend slot. A missing dayOfWeek yields NoDay.
func (s *RecurringSlot) UnmarshalJSON(data []byte) error {
	var raw slotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Day = NoDay
	if raw.DayOfWeek != nil && *raw.DayOfWeek >= 0 && *raw.DayOfWeek <= 6 {
		s.Day = time.Weekday(*raw.DayOfWeek)
	}
	s.Start = raw.StartTime
	s.End = raw.EndTime
	return nil
}

// Valid reports whether the slot has the fields the resolver needs.
func (s RecurringSlot) Valid() bool {
	return s.Day >= time.Sunday && s.Day <= time.Saturday && s.Start != ""
}

// Validate checks a slot before it is stored: both times must parse and the
// start must come before the end.
func (s RecurringSlot) Validate() error {
	if s.Day < time.Sunday || s.Day > time.Saturday {
		return fmt.Errorf("day of week %d out of range", int(s.Day))
	}
	from, err := parseTimeOfDay(s.Start)
	if err != nil {
		return fmt.Errorf("invalid start time %q: %w", s.Start, err)
	}
	to, err := parseTimeOfDay(s.End)
	if err != nil {
		return fmt.Errorf("invalid end time %q: %w", s.End, err)
	}
	if !from.Before(to) {
		return fmt.Errorf("start time %s must be before end time %s", from, to)
	}
	return nil
}

// String formats the slot as "Monday 09:00-10:00".
func (s RecurringSlot) String() string {
	return fmt.Sprintf("%s %s-%s", FormatWeekday(s.Day), NormalizeTime(s.Start), NormalizeTime(s.End))
}

// ClassSlots groups the recurring slots owned by a single class.
type ClassSlots struct {
	ClassID string
	Slots   []RecurringSlot
}
