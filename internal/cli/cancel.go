package cli

import (
	"fmt"

	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/gymdesk/gymdesk/internal/schedule"
	"github.com/spf13/cobra"
)

var cancelCmd = LeafCommand{
	Use:   "cancel BOOKING",
	Short: "Cancel one of your bookings",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		return runCancel(cmd, e.source, e.cfg.MemberID, args[0], ResolveConfirmFunc(yes))
	},
}.Build()

func runCancel(cmd *cobra.Command, src gym.Source, memberID, id string, confirm ConfirmFunc) error {
	ctx := commandContext(cmd)
	classes, bookings, err := memberData(ctx, src, memberID)
	if err != nil {
		return err
	}

	var target *gym.Booking
	for i := range bookings {
		if bookings[i].ID == id && bookings[i].Active() {
			target = &bookings[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: '%s'", gym.ErrBookingNotFound, id)
	}

	name := target.ClassID
	if c, ok := classIndex(classes)[target.ClassID]; ok {
		name = c.Name
	}
	when := fmt.Sprintf("%s at %s", schedule.FormatDate(target.Date), schedule.Format12h(target.StartTime))

	if err := confirmOrAbort(confirm, fmt.Sprintf("Cancel %s on %s?", name, when)); err != nil {
		return err
	}
	if err := src.CancelBooking(ctx, target.ID); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("cancelled %s on %s", Primary(name), when)))
	return nil
}
