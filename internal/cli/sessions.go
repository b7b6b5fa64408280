package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/gymdesk/gymdesk/internal/booking"
	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/gymdesk/gymdesk/internal/schedule"
)

const (
	labelBook   = "Book"
	labelBooked = "✅ Booked"
)

func classIndex(classes []gym.Class) map[string]gym.Class {
	m := make(map[string]gym.Class, len(classes))
	for _, c := range classes {
		m[c.ID] = c
	}
	return m
}

func className(byID map[string]gym.Class, id string) string {
	if c, ok := byID[id]; ok {
		if c.Instructor != "" {
			return fmt.Sprintf("%s %s", Primary(c.Name), Silent("with "+c.Instructor))
		}
		return Primary(c.Name)
	}
	return Primary(id)
}

func sessionState(s booking.Session) string {
	if s.Booked {
		return Success(labelBooked)
	}
	return Info(labelBook)
}

// printSessions writes one line per session:
// "Mon Feb 2  9:00 AM - 10:00 AM  Morning Yoga with Ana  ✅ Booked".
func printSessions(w io.Writer, sessions []booking.Session, classes []gym.Class) {
	byID := classIndex(classes)
	for _, s := range sessions {
		_, _ = fmt.Fprintf(w, "%-10s  %-19s  %s  %s\n",
			schedule.FormatDate(s.Date),
			schedule.FormatTimeRange(s.Time, s.End),
			className(byID, s.ClassID),
			sessionState(s),
		)
	}
}

// memberData loads the class list and the member's bookings.
func memberData(ctx context.Context, src gym.Source, memberID string) ([]gym.Class, []gym.Booking, error) {
	classes, err := src.ListClasses(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing classes: %w", err)
	}
	bookings, err := src.ListBookings(ctx, memberID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing bookings: %w", err)
	}
	return classes, bookings, nil
}
