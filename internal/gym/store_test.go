package gym

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gymdesk/gymdesk/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Source = (*Store)(nil)

func fixedClock() func() time.Time {
	t := time.Date(2026, 2, 4, 8, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	home := t.TempDir()
	return NewStore(home).WithClock(fixedClock()), home
}

func yogaWithSlots(t *testing.T, s *Store, capacity int) *Class {
	t.Helper()
	c, err := s.CreateClass("Morning Yoga", "Ana", capacity)
	require.NoError(t, err)
	c, _, err = s.AddSlots(c.ID, []schedule.RecurringSlot{
		{Day: time.Wednesday, Start: "09:00", End: "10:00"},
		{Day: time.Monday, Start: "09:00", End: "10:00"},
	})
	require.NoError(t, err)
	return c
}

func TestListClassesEmptyWhenNoRegistry(t *testing.T) {
	s, _ := newTestStore(t)

	classes, err := s.ListClasses(context.Background())

	require.NoError(t, err)
	assert.Empty(t, classes)
}

func TestCreateClass(t *testing.T) {
	s, home := newTestStore(t)

	c, err := s.CreateClass("  Spin & Core ", "Ben", 12)

	require.NoError(t, err)
	assert.Equal(t, "Spin & Core", c.Name)
	assert.Equal(t, "spin-core", c.Slug)
	assert.Equal(t, "Ben", c.Instructor)
	assert.Equal(t, 12, c.Capacity)
	assert.Len(t, c.ID, 7)
	assert.FileExists(t, ClassesPath(home))

	got, err := s.GetClass("spin-core")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestCreateClassRejectsDuplicatesAndBadInput(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.CreateClass("Yoga", "", 0)
	require.NoError(t, err)

	_, err = s.CreateClass("yoga", "", 0)
	assert.ErrorIs(t, err, ErrClassExists)

	_, err = s.CreateClass("!!!", "", 0)
	assert.Error(t, err)

	_, err = s.CreateClass("Box", "", -1)
	assert.Error(t, err)
}

func TestGetClassNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.GetClass("nope")

	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestAddSlotsValidatesNormalizesAndSorts(t *testing.T) {
	s, _ := newTestStore(t)
	c, err := s.CreateClass("Pilates", "", 0)
	require.NoError(t, err)

	c, added, err := s.AddSlots("pilates", []schedule.RecurringSlot{
		{Day: time.Friday, Start: "18:00:00", End: "19:00:00"},
		{Day: time.Tuesday, Start: "07:00", End: "08:00"},
		{Day: time.Friday, Start: "18:00", End: "19:00"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, []schedule.RecurringSlot{
		{Day: time.Tuesday, Start: "07:00", End: "08:00"},
		{Day: time.Friday, Start: "18:00", End: "19:00"},
	}, c.Slots)

	_, _, err = s.AddSlots(c.ID, []schedule.RecurringSlot{{Day: time.Monday, Start: "10:00", End: "09:00"}})
	assert.Error(t, err)

	reloaded, err := s.GetClass(c.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Slots, 2, "failed add must not persist")
}

func TestClearSlotsAndSetInstructor(t *testing.T) {
	s, _ := newTestStore(t)
	c := yogaWithSlots(t, s, 0)

	c, err := s.ClearSlots(c.Name)
	require.NoError(t, err)
	assert.Empty(t, c.Slots)

	c, err = s.SetInstructor(c.ID, " Chloe ")
	require.NoError(t, err)
	assert.Equal(t, "Chloe", c.Instructor)
}

func TestCreateBooking(t *testing.T) {
	s, home := newTestStore(t)
	c := yogaWithSlots(t, s, 0)

	b, err := s.CreateBooking(context.Background(), Booking{
		ClassID:   "morning yoga",
		MemberID:  "m1",
		Date:      "2026-02-04",
		StartTime: "09:00:00",
	})

	require.NoError(t, err)
	assert.Equal(t, c.ID, b.ClassID)
	assert.Equal(t, "09:00", b.StartTime)
	assert.Equal(t, StatusBooked, b.Status)
	assert.NotEmpty(t, b.ID)
	assert.FileExists(t, BookingPath(home, b.ID))
}

func TestCreateBookingRules(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	c := yogaWithSlots(t, s, 2)

	book := func(member, date, start string) error {
		_, err := s.CreateBooking(ctx, Booking{ClassID: c.ID, MemberID: member, Date: date, StartTime: start})
		return err
	}

	assert.ErrorIs(t, book("m1", "2026-02-05", "09:00"), ErrNoSuchSession, "thursday is not scheduled")
	assert.ErrorIs(t, book("m1", "2026-02-04", "10:00"), ErrNoSuchSession, "wrong start time")
	assert.ErrorIs(t, book("m1", "garbage", "09:00"), ErrNoSuchSession)

	_, err := s.CreateBooking(ctx, Booking{ClassID: "ghost", MemberID: "m1", Date: "2026-02-04", StartTime: "09:00"})
	assert.ErrorIs(t, err, ErrClassNotFound)

	require.NoError(t, book("m1", "2026-02-04", "09:00"))
	assert.ErrorIs(t, book("m1", "2026-02-04", "09:00:00"), ErrAlreadyBooked)

	require.NoError(t, book("m2", "2026-02-04", "09:00"))
	assert.ErrorIs(t, book("m3", "2026-02-04", "09:00"), ErrClassFull)

	// Another date has its own capacity.
	assert.NoError(t, book("m3", "2026-02-09", "09:00"))
}

func TestCancelBookingFreesThePlace(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	c := yogaWithSlots(t, s, 1)

	b, err := s.CreateBooking(ctx, Booking{ClassID: c.ID, MemberID: "m1", Date: "2026-02-04", StartTime: "09:00"})
	require.NoError(t, err)

	require.NoError(t, s.CancelBooking(ctx, b.ID))

	got, err := s.ReadBooking(b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
	assert.False(t, got.Active())

	assert.ErrorIs(t, s.CancelBooking(ctx, b.ID), ErrBookingNotFound)
	assert.ErrorIs(t, s.CancelBooking(ctx, "missing"), ErrBookingNotFound)

	_, err = s.CreateBooking(ctx, Booking{ClassID: c.ID, MemberID: "m2", Date: "2026-02-04", StartTime: "09:00"})
	assert.NoError(t, err)

	_, err = s.CreateBooking(ctx, Booking{ClassID: c.ID, MemberID: "m1", Date: "2026-02-04", StartTime: "09:00"})
	assert.ErrorIs(t, err, ErrClassFull)
}

func TestListBookingsFiltersAndSkipsCorruptFiles(t *testing.T) {
	ctx := context.Background()
	s, home := newTestStore(t)
	c := yogaWithSlots(t, s, 0)

	_, err := s.CreateBooking(ctx, Booking{ClassID: c.ID, MemberID: "m1", Date: "2026-02-09", StartTime: "09:00"})
	require.NoError(t, err)
	_, err = s.CreateBooking(ctx, Booking{ClassID: c.ID, MemberID: "m1", Date: "2026-02-04", StartTime: "09:00"})
	require.NoError(t, err)
	_, err = s.CreateBooking(ctx, Booking{ClassID: c.ID, MemberID: "m2", Date: "2026-02-04", StartTime: "09:00"})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(BookingsDir(home), "broken"), []byte("{not json"), 0644))

	mine, err := s.ListBookings(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "2026-02-04", mine[0].Date)
	assert.Equal(t, "2026-02-09", mine[1].Date)

	all, err := s.ListBookings(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRemoveClassDeletesItsBookings(t *testing.T) {
	ctx := context.Background()
	s, home := newTestStore(t)
	c := yogaWithSlots(t, s, 0)
	other, err := s.CreateClass("Box", "", 0)
	require.NoError(t, err)

	b, err := s.CreateBooking(ctx, Booking{ClassID: c.ID, MemberID: "m1", Date: "2026-02-04", StartTime: "09:00"})
	require.NoError(t, err)

	removed, err := s.RemoveClass("Morning Yoga")

	require.NoError(t, err)
	assert.Equal(t, c.ID, removed.ID)
	assert.NoFileExists(t, BookingPath(home, b.ID))

	classes, err := s.ListClasses(ctx)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, other.ID, classes[0].ID)

	_, err = s.RemoveClass("Morning Yoga")
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestClassHasSession(t *testing.T) {
	c := Class{Slots: []schedule.RecurringSlot{
		{Day: time.Monday, Start: "09:00:00", End: "10:00:00"},
		{Day: schedule.NoDay, Start: "12:00", End: "13:00"},
	}}

	assert.True(t, c.HasSession("2026-02-02", "09:00"))
	assert.False(t, c.HasSession("2026-02-03", "09:00"))
	assert.False(t, c.HasSession("2026-02-02", "12:00"))
}

func TestFindClass(t *testing.T) {
	classes := []Class{
		{ID: "abc1234", Name: "HIIT Blast", Slug: "hiit-blast"},
		{ID: "def5678", Name: "Yoga", Slug: "yoga"},
	}

	assert.Equal(t, "abc1234", FindClass(classes, "hiit blast").ID)
	assert.Equal(t, "abc1234", FindClass(classes, "HIIT-Blast").ID)
	assert.Equal(t, "def5678", FindClass(classes, "def5678").ID)
	assert.Nil(t, FindClass(classes, "pilates"))
	assert.Nil(t, FindClass(classes, ""))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Yoga", "yoga"},
		{"Spin & Core", "spin-core"},
		{"---HIIT---", "hiit"},
		{"Hello, World! (2024)", "hello-world-2024"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
