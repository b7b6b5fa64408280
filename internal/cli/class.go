package cli

import "github.com/spf13/cobra"

var classCmd = GroupCommand{
	Use:   "class",
	Short: "Manage gym classes and their weekly slots",
	Subcommands: []*cobra.Command{
		classAddCmd,
		classListCmd,
		classRemoveCmd,
		classInstructorCmd,
		classSlotCmd,
	},
}.Build()
