package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gymdesk/gymdesk/internal/config"
	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/spf13/cobra"
)

var watchCmd = LeafCommand{
	Use:   "watch",
	Short: "Keep the upcoming classes view current until interrupted",
	Args:  cobra.NoArgs,
	IntFlags: []IntFlag{
		{Name: "limit", Usage: "number of sessions to show (default from config)"},
	},
	DurFlags: []DurationFlag{
		{Name: "interval", Usage: "refresh interval (default from config)"},
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
		interval, _ := cmd.Flags().GetDuration("interval")
		if interval == 0 {
			interval = e.cfg.PollInterval
		}
		if interval < config.MinPollInterval {
			return fmt.Errorf("--interval must be at least %s", config.MinPollInterval)
		}

		ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		return runWatch(ctx, cmd, e.source, e.cfg.MemberID, e.now, limit, ticker.C)
	},
}.Build()

// runWatch prints the upcoming view, then re-resolves it from scratch on
// every tick until ctx is done. A failed refresh is logged and the previous
// view stays on screen.
func runWatch(ctx context.Context, cmd *cobra.Command, src gym.Source, memberID string, now func() time.Time, limit int, ticks <-chan time.Time) error {
	cmd.SetContext(ctx)
	w := cmd.OutOrStdout()

	render := func() error {
		t := now()
		sessions, classes, err := upcomingSessions(cmd, src, memberID, t, limit)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, Silent(fmt.Sprintf("upcoming classes as of %s", t.Format("Mon Jan 2 15:04"))))
		if len(sessions) == 0 {
			_, _ = fmt.Fprintln(w, Silent("no upcoming classes"))
		} else {
			printSessions(w, sessions, classes)
		}
		return nil
	}

	if err := render(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			_, _ = fmt.Fprintln(w)
			if err := render(); err != nil {
				logger.Warn().Err(err).Msg("refresh failed")
			}
		}
	}
}
