package gym

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gymdesk/gymdesk/internal/hashutil"
	"github.com/gymdesk/gymdesk/internal/schedule"
)

// registry is the on-disk shape of classes.json.
type registry struct {
	Classes []Class `json:"classes"`
}

// Store is a file-backed Source rooted at ~/.gymdesk. Classes live in one
// registry file; each booking is its own JSON file under bookings/.
type Store struct {
	homeDir string
	now     func() time.Time
}

// NewStore returns a Store rooted in homeDir.
func NewStore(homeDir string) *Store {
	return &Store{homeDir: homeDir, now: time.Now}
}

// WithClock replaces the store's clock, used for booking timestamps and ids.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Dir returns the global gymdesk directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".gymdesk")
}

// ClassesPath returns the path to the class registry.
func ClassesPath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "classes.json")
}

// BookingsDir returns the directory holding one file per booking.
func BookingsDir(homeDir string) string {
	return filepath.Join(Dir(homeDir), "bookings")
}

// BookingPath returns the filesystem path for a single booking file.
func BookingPath(homeDir, id string) string {
	return filepath.Join(BookingsDir(homeDir), id)
}

func (s *Store) readRegistry() (*registry, error) {
	data, err := os.ReadFile(ClassesPath(s.homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return &registry{}, nil
	}
	if err != nil {
		return nil, err
	}

	var reg registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("reading %s: %w", ClassesPath(s.homeDir), err)
	}
	return &reg, nil
}

func (s *Store) writeRegistry(reg *registry) error {
	if err := os.MkdirAll(Dir(s.homeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(ClassesPath(s.homeDir), data, 0644)
}

// ListClasses returns all classes in registry order.
func (s *Store) ListClasses(_ context.Context) ([]Class, error) {
	reg, err := s.readRegistry()
	if err != nil {
		return nil, err
	}
	return reg.Classes, nil
}

// GetClass resolves a class by id, name or slug.
func (s *Store) GetClass(ref string) (*Class, error) {
	reg, err := s.readRegistry()
	if err != nil {
		return nil, err
	}
	c := FindClass(reg.Classes, ref)
	if c == nil {
		return nil, fmt.Errorf("%w: '%s'", ErrClassNotFound, ref)
	}
	return c, nil
}

// CreateClass adds a new class without slots.
func (s *Store) CreateClass(name, instructor string, capacity int) (*Class, error) {
	name = strings.TrimSpace(name)
	slug := Slugify(name)
	if slug == "" {
		return nil, fmt.Errorf("class name %q is empty", name)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("capacity must not be negative")
	}

	reg, err := s.readRegistry()
	if err != nil {
		return nil, err
	}
	if FindClass(reg.Classes, name) != nil {
		return nil, fmt.Errorf("%w: '%s'", ErrClassExists, name)
	}

	c := Class{
		ID:         hashutil.NewID(s.now(), name),
		Name:       name,
		Slug:       slug,
		Instructor: strings.TrimSpace(instructor),
		Capacity:   capacity,
		Slots:      []schedule.RecurringSlot{},
	}
	reg.Classes = append(reg.Classes, c)
	if err := s.writeRegistry(reg); err != nil {
		return nil, err
	}
	return &c, nil
}

// RemoveClass deletes a class and every booking made for it.
func (s *Store) RemoveClass(ref string) (*Class, error) {
	reg, err := s.readRegistry()
	if err != nil {
		return nil, err
	}
	found := FindClass(reg.Classes, ref)
	if found == nil {
		return nil, fmt.Errorf("%w: '%s'", ErrClassNotFound, ref)
	}
	removed := *found

	classes := make([]Class, 0, len(reg.Classes)-1)
	for _, c := range reg.Classes {
		if c.ID != removed.ID {
			classes = append(classes, c)
		}
	}
	reg.Classes = classes
	if err := s.writeRegistry(reg); err != nil {
		return nil, err
	}

	bookings, err := s.readAllBookings()
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if b.ClassID == removed.ID {
			if err := os.Remove(BookingPath(s.homeDir, b.ID)); err != nil && !os.IsNotExist(err) {
				return nil, err
			}
		}
	}
	return &removed, nil
}

// updateClass applies fn to the class matching ref and persists the registry.
func (s *Store) updateClass(ref string, fn func(c *Class) error) (*Class, error) {
	reg, err := s.readRegistry()
	if err != nil {
		return nil, err
	}
	c := FindClass(reg.Classes, ref)
	if c == nil {
		return nil, fmt.Errorf("%w: '%s'", ErrClassNotFound, ref)
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := s.writeRegistry(reg); err != nil {
		return nil, err
	}
	updated := *c
	return &updated, nil
}

// AddSlots validates and appends slots to a class. Slots already present are
// skipped; the returned count is how many were added.
func (s *Store) AddSlots(ref string, slots []schedule.RecurringSlot) (*Class, int, error) {
	added := 0
	c, err := s.updateClass(ref, func(c *Class) error {
		for _, slot := range slots {
			if err := slot.Validate(); err != nil {
				return err
			}
			slot.Start = schedule.NormalizeTime(slot.Start)
			slot.End = schedule.NormalizeTime(slot.End)
			if containsSlot(c.Slots, slot) {
				continue
			}
			c.Slots = append(c.Slots, slot)
			added++
		}
		sort.SliceStable(c.Slots, func(i, j int) bool {
			if c.Slots[i].Day != c.Slots[j].Day {
				return c.Slots[i].Day < c.Slots[j].Day
			}
			return c.Slots[i].Start < c.Slots[j].Start
		})
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return c, added, nil
}

func containsSlot(slots []schedule.RecurringSlot, slot schedule.RecurringSlot) bool {
	for _, s := range slots {
		if s.Day == slot.Day && schedule.NormalizeTime(s.Start) == slot.Start {
			return true
		}
	}
	return false
}

// ClearSlots removes every slot from a class.
func (s *Store) ClearSlots(ref string) (*Class, error) {
	return s.updateClass(ref, func(c *Class) error {
		c.Slots = []schedule.RecurringSlot{}
		return nil
	})
}

// SetInstructor assigns the instructor of a class.
func (s *Store) SetInstructor(ref, instructor string) (*Class, error) {
	return s.updateClass(ref, func(c *Class) error {
		c.Instructor = strings.TrimSpace(instructor)
		return nil
	})
}

// ListBookings returns the member's bookings, oldest session first.
// An empty memberID returns every booking.
func (s *Store) ListBookings(_ context.Context, memberID string) ([]Booking, error) {
	all, err := s.readAllBookings()
	if err != nil {
		return nil, err
	}

	var out []Booking
	for _, b := range all {
		if memberID == "" || b.MemberID == memberID {
			out = append(out, b)
		}
	}
	sortBookings(out)
	return out, nil
}

// CreateBooking books a class session for a member. The class must run at
// that date and time, the member may not hold the same session twice, and
// the class capacity is respected.
func (s *Store) CreateBooking(_ context.Context, b Booking) (Booking, error) {
	reg, err := s.readRegistry()
	if err != nil {
		return Booking{}, err
	}
	c := FindClass(reg.Classes, b.ClassID)
	if c == nil {
		return Booking{}, fmt.Errorf("%w: '%s'", ErrClassNotFound, b.ClassID)
	}
	b.ClassID = c.ID
	b.StartTime = schedule.NormalizeTime(b.StartTime)
	if !c.HasSession(b.Date, b.StartTime) {
		return Booking{}, fmt.Errorf("%w: %s on %s at %s", ErrNoSuchSession, c.Name, b.Date, b.StartTime)
	}

	existing, err := s.readAllBookings()
	if err != nil {
		return Booking{}, err
	}
	taken := 0
	for _, other := range existing {
		if !other.Active() || other.ClassID != b.ClassID || other.Date != b.Date ||
			schedule.NormalizeTime(other.StartTime) != b.StartTime {
			continue
		}
		if other.MemberID == b.MemberID {
			return Booking{}, fmt.Errorf("%w: %s on %s at %s", ErrAlreadyBooked, c.Name, b.Date, b.StartTime)
		}
		taken++
	}
	if c.Capacity > 0 && taken >= c.Capacity {
		return Booking{}, fmt.Errorf("%w: %s on %s at %s (%d/%d)", ErrClassFull, c.Name, b.Date, b.StartTime, taken, c.Capacity)
	}

	now := s.now()
	b.ID = hashutil.NewID(now, b.ClassID, b.MemberID, b.Date, b.StartTime)
	b.Status = StatusBooked
	b.CreatedAt = now
	if err := s.writeBooking(b); err != nil {
		return Booking{}, err
	}
	return b, nil
}

// CancelBooking marks a booking as cancelled. The file is kept so the
// history stays visible.
func (s *Store) CancelBooking(_ context.Context, id string) error {
	b, err := s.ReadBooking(id)
	if err != nil {
		return err
	}
	if !b.Active() {
		return fmt.Errorf("%w: '%s' is already cancelled", ErrBookingNotFound, id)
	}
	b.Status = StatusCancelled
	return s.writeBooking(b)
}

// ReadBooking reads a single booking by id.
func (s *Store) ReadBooking(id string) (Booking, error) {
	data, err := os.ReadFile(BookingPath(s.homeDir, id))
	if err != nil {
		return Booking{}, fmt.Errorf("%w: '%s'", ErrBookingNotFound, id)
	}

	var b Booking
	if err := json.Unmarshal(data, &b); err != nil {
		return Booking{}, err
	}
	return b, nil
}

func (s *Store) writeBooking(b Booking) error {
	if err := os.MkdirAll(BookingsDir(s.homeDir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(BookingPath(s.homeDir, b.ID), data, 0644)
}

func (s *Store) readAllBookings() ([]Booking, error) {
	dir := BookingsDir(s.homeDir)
	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var bookings []Booking
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, err
		}

		// Corrupted or partial files shouldn't block reading valid bookings.
		var b Booking
		if err := json.Unmarshal(data, &b); err != nil || b.ID == "" {
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func sortBookings(bookings []Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		return schedule.NormalizeTime(bookings[i].StartTime) < schedule.NormalizeTime(bookings[j].StartTime)
	})
}
