package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/gymdesk/gymdesk/internal/schedule"
	"github.com/spf13/cobra"
)

var bookingsCmd = LeafCommand{
	Use:   "bookings",
	Short: "List your active bookings",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "all", Usage: "include past sessions"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		all, _ := cmd.Flags().GetBool("all")
		return runBookings(cmd, e.source, e.cfg.MemberID, e.now(), all)
	},
}.Build()

func runBookings(cmd *cobra.Command, src gym.Source, memberID string, now time.Time, all bool) error {
	classes, bookings, err := memberData(commandContext(cmd), src, memberID)
	if err != nil {
		return err
	}

	today := now.Format(schedule.DateLayout)
	var active []gym.Booking
	for _, b := range bookings {
		if !b.Active() {
			continue
		}
		if !all && b.Date < today {
			continue
		}
		active = append(active, b)
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Date != active[j].Date {
			return active[i].Date < active[j].Date
		}
		return schedule.NormalizeTime(active[i].StartTime) < schedule.NormalizeTime(active[j].StartTime)
	})

	w := cmd.OutOrStdout()
	if len(active) == 0 {
		_, _ = fmt.Fprintln(w, Silent("no bookings"))
		return nil
	}

	byID := classIndex(classes)
	for _, b := range active {
		when := fmt.Sprintf("%-10s  %-8s", schedule.FormatDate(b.Date), schedule.Format12h(b.StartTime))
		if b.Date < today {
			when = Silent(when)
		}
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n", Silent(b.ID), when, className(byID, b.ClassID))
	}
	return nil
}
