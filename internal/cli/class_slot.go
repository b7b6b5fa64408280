package cli

import (
	"fmt"

	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/gymdesk/gymdesk/internal/schedule"
	"github.com/spf13/cobra"
)

var classSlotCmd = GroupCommand{
	Use:   "slot",
	Short: "Edit the weekly slots of a class",
	Subcommands: []*cobra.Command{
		classSlotAddCmd,
		classSlotClearCmd,
	},
}.Build()

var classSlotAddCmd = LeafCommand{
	Use:   `add CLASS "from 9am to 10am every monday"`,
	Short: "Add weekly slots to a class",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		store, err := e.localStore()
		if err != nil {
			return err
		}
		return runClassSlotAdd(cmd, store, args[0], args[1])
	},
}.Build()

var classSlotClearCmd = LeafCommand{
	Use:   "clear CLASS",
	Short: "Remove every slot from a class",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		store, err := e.localStore()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		return runClassSlotClear(cmd, store, args[0], ResolveConfirmFunc(yes))
	},
}.Build()

func runClassSlotAdd(cmd *cobra.Command, store *gym.Store, ref, expr string) error {
	slots, err := schedule.ParseSlots(expr)
	if err != nil {
		return err
	}

	c, added, err := store.AddSlots(ref, slots)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if added == 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Warning(fmt.Sprintf("'%s' already has those slots", c.Name)))
		return nil
	}
	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("added %d slot(s) to '%s'", added, Primary(c.Name))))
	_, _ = fmt.Fprintf(w, "  %s\n", Info(schedule.FormatSlots(c.Slots)))
	return nil
}

func runClassSlotClear(cmd *cobra.Command, store *gym.Store, ref string, confirm ConfirmFunc) error {
	c, err := store.GetClass(ref)
	if err != nil {
		return err
	}
	if len(c.Slots) == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Silent(fmt.Sprintf("'%s' has no slots", c.Name)))
		return nil
	}

	prompt := fmt.Sprintf("Remove all %d slot(s) from '%s'?", len(c.Slots), c.Name)
	if err := confirmOrAbort(confirm, prompt); err != nil {
		return err
	}

	if _, err := store.ClearSlots(c.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("cleared slots of '%s'", Primary(c.Name))))
	return nil
}
