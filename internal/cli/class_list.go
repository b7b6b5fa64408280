package cli

import (
	"fmt"

	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/gymdesk/gymdesk/internal/schedule"
	"github.com/spf13/cobra"
)

var classListCmd = LeafCommand{
	Use:   "list",
	Short: "List classes with their instructors and weekly slots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		return runClassList(cmd, e.source)
	},
}.Build()

func runClassList(cmd *cobra.Command, src gym.Source) error {
	classes, err := src.ListClasses(commandContext(cmd))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(classes) == 0 {
		_, _ = fmt.Fprintln(w, Silent("no classes yet, add one with 'gymdesk class add'"))
		return nil
	}

	for _, c := range classes {
		line := fmt.Sprintf("%s %s", Primary(c.Name), Silent("("+c.ID+")"))
		if c.Instructor != "" {
			line += " " + Text("with "+c.Instructor)
		}
		if c.Capacity > 0 {
			line += " " + Silent(fmt.Sprintf("[%d places]", c.Capacity))
		}
		_, _ = fmt.Fprintln(w, line)
		_, _ = fmt.Fprintf(w, "  %s\n", Info(schedule.FormatSlots(c.Slots)))
	}
	return nil
}
