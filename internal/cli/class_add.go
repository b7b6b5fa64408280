package cli

import (
	"fmt"

	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/spf13/cobra"
)

var classAddCmd = LeafCommand{
	Use:   "add NAME",
	Short: "Create a new class",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "instructor", Usage: "instructor leading the class"},
	},
	IntFlags: []IntFlag{
		{Name: "capacity", Usage: "maximum bookings per session (0 = unlimited)"},
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
		instructor, _ := cmd.Flags().GetString("instructor")
		capacity, _ := cmd.Flags().GetInt("capacity")
		return runClassAdd(cmd, store, args[0], instructor, capacity)
	},
}.Build()

func runClassAdd(cmd *cobra.Command, store *gym.Store, name, instructor string, capacity int) error {
	c, err := store.CreateClass(name, instructor, capacity)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("class '%s' created (%s)", Primary(c.Name), Silent(c.ID))))
	return nil
}
