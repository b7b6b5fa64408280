package cli

import (
	"fmt"
	"time"

	"github.com/gymdesk/gymdesk/internal/booking"
	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/gymdesk/gymdesk/internal/schedule"
	"github.com/spf13/cobra"
)

var bookCmd = LeafCommand{
	Use:   "book CLASS",
	Short: "Book a class session (its next one unless --date is given)",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "date", Usage: "session date (YYYY-MM-DD, 'tomorrow', 'friday', ...)"},
		{Name: "time", Usage: "session start time when the class runs more than once that day"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		date, _ := cmd.Flags().GetString("date")
		startTime, _ := cmd.Flags().GetString("time")
		return runBook(cmd, e.source, e.cfg.MemberID, e.now(), args[0], date, startTime)
	},
}.Build()

func runBook(cmd *cobra.Command, src gym.Source, memberID string, now time.Time, ref, dateFlag, timeFlag string) error {
	ctx := commandContext(cmd)
	classes, bookings, err := memberData(ctx, src, memberID)
	if err != nil {
		return err
	}

	c := gym.FindClass(classes, ref)
	if c == nil {
		return fmt.Errorf("%w: '%s'", gym.ErrClassNotFound, ref)
	}

	occ, err := pickSession(c, now, dateFlag, timeFlag)
	if err != nil {
		return err
	}
	if booking.IsBooked(occ, booking.NewKeySet(bookings)) {
		return fmt.Errorf("%w: %s on %s at %s", gym.ErrAlreadyBooked, c.Name, occ.Date, occ.Time)
	}

	b, err := src.CreateBooking(ctx, gym.Booking{
		ClassID:   c.ID,
		MemberID:  memberID,
		Date:      occ.Date,
		StartTime: occ.Time,
	})
	if err != nil {
		return err
	}
	logger.Debug().Str("booking", b.ID).Str("class", c.ID).Msg("booking created")

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		Success(labelBooked),
		Text(fmt.Sprintf("%s on %s at %s (%s)",
			Primary(c.Name), schedule.FormatDate(occ.Date), schedule.Format12h(occ.Time), Silent(b.ID))))
	return nil
}

// pickSession chooses the occurrence to book. Without a date it is the
// class's next occurrence. With a date, the time may be omitted when the
// class runs only once that day.
func pickSession(c *gym.Class, now time.Time, dateFlag, timeFlag string) (schedule.Occurrence, error) {
	if dateFlag == "" {
		if timeFlag != "" {
			return schedule.Occurrence{}, fmt.Errorf("--time requires --date")
		}
		occ, ok := schedule.ResolveNext(c.ID, c.Slots, schedule.ReferenceAt(now))
		if !ok {
			return schedule.Occurrence{}, fmt.Errorf("class '%s' has no scheduled slots", c.Name)
		}
		return occ, nil
	}

	day, err := schedule.ParseDate(dateFlag, now)
	if err != nil {
		return schedule.Occurrence{}, err
	}
	date := day.Format(schedule.DateLayout)

	var candidates []schedule.RecurringSlot
	for _, s := range c.Slots {
		if s.Valid() && s.Day == day.Weekday() {
			candidates = append(candidates, s)
		}
	}

	var slot schedule.RecurringSlot
	switch {
	case timeFlag != "":
		tod, err := schedule.ParseTimeOfDay(timeFlag)
		if err != nil {
			return schedule.Occurrence{}, err
		}
		found := false
		for _, s := range candidates {
			if schedule.NormalizeTime(s.Start) == tod.String() {
				slot, found = s, true
				break
			}
		}
		if !found {
			return schedule.Occurrence{}, fmt.Errorf("%w: %s on %s at %s", gym.ErrNoSuchSession, c.Name, date, tod)
		}
	case len(candidates) == 1:
		slot = candidates[0]
	case len(candidates) == 0:
		return schedule.Occurrence{}, fmt.Errorf("%w: %s on %s", gym.ErrNoSuchSession, c.Name, date)
	default:
		return schedule.Occurrence{}, fmt.Errorf("'%s' runs %d times on %s, pick one with --time", c.Name, len(candidates), date)
	}

	start := schedule.NormalizeTime(slot.Start)
	if date == now.Format(schedule.DateLayout) && start <= schedule.ReferenceAt(now).Time {
		return schedule.Occurrence{}, fmt.Errorf("the %s session of '%s' has already started", start, c.Name)
	}
	if day.Before(truncateDay(now)) {
		return schedule.Occurrence{}, fmt.Errorf("%s is in the past", date)
	}

	return schedule.Occurrence{
		ClassID: c.ID,
		Date:    date,
		Time:    start,
		End:     schedule.NormalizeTime(slot.End),
	}, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
