package cli

import (
	"fmt"
	"time"

	"github.com/gymdesk/gymdesk/internal/booking"
	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/gymdesk/gymdesk/internal/schedule"
	"github.com/spf13/cobra"
)

const defaultAgendaDays = 7

var scheduleCmd = LeafCommand{
	Use:   "schedule",
	Short: "Show every class session over the next days",
	Args:  cobra.NoArgs,
	IntFlags: []IntFlag{
		{Name: "days", Usage: "number of days to show", Default: defaultAgendaDays},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		days, _ := cmd.Flags().GetInt("days")
		return runSchedule(cmd, e.source, e.cfg.MemberID, e.now(), days)
	},
}.Build()

// agendaWindow returns [now, end of the day days-1 after now].
func agendaWindow(now time.Time, days int) (time.Time, time.Time, error) {
	if days < 1 {
		return time.Time{}, time.Time{}, fmt.Errorf("--days must be at least 1, got %d", days)
	}
	last := now.AddDate(0, 0, days-1)
	to := time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 0, 0, now.Location())
	return now, to, nil
}

func agendaSessions(cmd *cobra.Command, src gym.Source, memberID string, from, to time.Time) ([]booking.Session, []gym.Class, error) {
	classes, bookings, err := memberData(commandContext(cmd), src, memberID)
	if err != nil {
		return nil, nil, err
	}
	occs, err := schedule.Expand(gym.ClassSlots(classes), from, to)
	if err != nil {
		return nil, nil, err
	}
	return booking.Annotate(occs, bookings), classes, nil
}

func runSchedule(cmd *cobra.Command, src gym.Source, memberID string, now time.Time, days int) error {
	from, to, err := agendaWindow(now, days)
	if err != nil {
		return err
	}
	sessions, classes, err := agendaSessions(cmd, src, memberID, from, to)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(sessions) == 0 {
		_, _ = fmt.Fprintln(w, Silent(fmt.Sprintf("no classes in the next %d day(s)", days)))
		return nil
	}

	byID := classIndex(classes)
	current := ""
	for _, s := range sessions {
		if s.Date != current {
			if current != "" {
				_, _ = fmt.Fprintln(w)
			}
			current = s.Date
			_, _ = fmt.Fprintln(w, Primary(schedule.FormatDate(s.Date)))
		}
		_, _ = fmt.Fprintf(w, "  %-19s  %s  %s\n",
			schedule.FormatTimeRange(s.Time, s.End),
			className(byID, s.ClassID),
			sessionState(s),
		)
	}
	return nil
}
