package cli

import (
	"fmt"

	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/spf13/cobra"
)

var classInstructorCmd = LeafCommand{
	Use:   "instructor CLASS NAME",
	Short: "Assign the instructor of a class",
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
		return runClassInstructor(cmd, store, args[0], args[1])
	},
}.Build()

func runClassInstructor(cmd *cobra.Command, store *gym.Store, ref, instructor string) error {
	c, err := store.SetInstructor(ref, instructor)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("'%s' is now led by %s", Primary(c.Name), Info(c.Instructor))))
	return nil
}
