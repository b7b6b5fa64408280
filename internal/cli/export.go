package cli

import (
	"fmt"
	"time"

	"github.com/gymdesk/gymdesk/internal/export"
	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/spf13/cobra"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export the class timetable as PDF, XLSX or HTML",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "format", Usage: "pdf, xlsx or html (default from --output extension)"},
		{Name: "output", Usage: "output file path"},
	},
	IntFlags: []IntFlag{
		{Name: "days", Usage: "number of days to include", Default: defaultAgendaDays},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		days, _ := cmd.Flags().GetInt("days")
		return runExport(cmd, e.source, e.cfg.MemberID, e.now(), format, output, days)
	},
}.Build()

func runExport(cmd *cobra.Command, src gym.Source, memberID string, now time.Time, format, output string, days int) error {
	if output == "" {
		return fmt.Errorf("--output is required")
	}
	f, err := export.ParseFormat(format, output)
	if err != nil {
		return err
	}

	from, to, err := agendaWindow(now, days)
	if err != nil {
		return err
	}
	sessions, classes, err := agendaSessions(cmd, src, memberID, from, to)
	if err != nil {
		return err
	}

	tt := export.Build(fmt.Sprintf("Class timetable for %s", memberID), sessions, classes, from, to)
	if err := export.Render(tt, f, output); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("exported %d session(s) to %s", len(tt.Rows), Primary(output))))
	return nil
}
