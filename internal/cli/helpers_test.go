package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/gymdesk/gymdesk/internal/schedule"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// wednesdayMorning is Wed 2026-02-04 08:00; the month starts on a Sunday.
var wednesdayMorning = time.Date(2026, 2, 4, 8, 0, 0, 0, time.UTC)

func testStore(t *testing.T) *gym.Store {
	t.Helper()
	tick := wednesdayMorning
	return gym.NewStore(t.TempDir()).WithClock(func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	})
}

// seedClasses creates Morning Yoga (Mon/Wed 09:00-10:00, Ana) and Spin
// (Fri 18:00-19:00, capacity 1).
func seedClasses(t *testing.T, store *gym.Store) (yoga, spin *gym.Class) {
	t.Helper()
	yoga, err := store.CreateClass("Morning Yoga", "Ana", 0)
	require.NoError(t, err)
	yoga, _, err = store.AddSlots(yoga.ID, []schedule.RecurringSlot{
		{Day: time.Monday, Start: "09:00", End: "10:00"},
		{Day: time.Wednesday, Start: "09:00:00", End: "10:00:00"},
	})
	require.NoError(t, err)

	spin, err = store.CreateClass("Spin", "", 1)
	require.NoError(t, err)
	spin, _, err = store.AddSlots(spin.ID, []schedule.RecurringSlot{
		{Day: time.Friday, Start: "18:00", End: "19:00"},
	})
	require.NoError(t, err)
	return yoga, spin
}

// testCmd returns a throwaway command whose output is captured.
func testCmd() (*cobra.Command, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(stdout)
	cmd.SetErr(new(bytes.Buffer))
	return cmd, stdout
}

func declineConfirm() ConfirmFunc {
	return func(_ string) (bool, error) { return false, nil }
}
