package cli

import (
	"fmt"

	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/spf13/cobra"
)

var classRemoveCmd = LeafCommand{
	Use:   "remove CLASS",
	Short: "Remove a class and all of its bookings",
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
		return runClassRemove(cmd, store, args[0], ResolveConfirmFunc(yes))
	},
}.Build()

func runClassRemove(cmd *cobra.Command, store *gym.Store, ref string, confirm ConfirmFunc) error {
	c, err := store.GetClass(ref)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("Remove class '%s' and every booking made for it?", c.Name)
	if err := confirmOrAbort(confirm, prompt); err != nil {
		return err
	}

	if _, err := store.RemoveClass(c.ID); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("class '%s' removed", Primary(c.Name))))
	return nil
}
