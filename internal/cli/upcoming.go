package cli

import (
	"fmt"
	"time"

	"github.com/gymdesk/gymdesk/internal/booking"
	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/gymdesk/gymdesk/internal/schedule"
	"github.com/spf13/cobra"
)

var upcomingCmd = LeafCommand{
	Use:   "upcoming",
	Short: "Show the next session of every class and whether it is booked",
	Args:  cobra.NoArgs,
	IntFlags: []IntFlag{
		{Name: "limit", Usage: "number of sessions to show (default from config)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = e.cfg.UpcomingLimit
		}
		return runUpcoming(cmd, e.source, e.cfg.MemberID, e.now(), limit)
	},
}.Build()

// upcomingSessions resolves every class's next occurrence after now and
// marks the ones the member already booked.
func upcomingSessions(cmd *cobra.Command, src gym.Source, memberID string, now time.Time, limit int) ([]booking.Session, []gym.Class, error) {
	classes, bookings, err := memberData(commandContext(cmd), src, memberID)
	if err != nil {
		return nil, nil, err
	}

	occs := schedule.ResolveAll(gym.ClassSlots(classes), schedule.ReferenceAt(now))
	occs = schedule.Upcoming(occs, limit)
	logger.Debug().Int("classes", len(classes)).Int("bookings", len(bookings)).Int("occurrences", len(occs)).Msg("resolved upcoming")
	return booking.Annotate(occs, bookings), classes, nil
}

func runUpcoming(cmd *cobra.Command, src gym.Source, memberID string, now time.Time, limit int) error {
	sessions, classes, err := upcomingSessions(cmd, src, memberID, now, limit)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(sessions) == 0 {
		_, _ = fmt.Fprintln(w, Silent("no upcoming classes"))
		return nil
	}
	printSessions(w, sessions, classes)
	return nil
}
