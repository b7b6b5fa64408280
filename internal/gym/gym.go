// Package gym holds the class and booking model shared by the local store
// and the REST client.
package gym

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/gymdesk/gymdesk/internal/schedule"
)

var (
	ErrClassNotFound   = errors.New("class not found")
	ErrClassExists     = errors.New("class already exists")
	ErrBookingNotFound = errors.New("booking not found")
	ErrAlreadyBooked   = errors.New("session already booked")
	ErrClassFull       = errors.New("class is full")
	ErrNoSuchSession   = errors.New("class has no session at that time")
)

// Booking statuses.
const (
	StatusBooked    = "booked"
	StatusCancelled = "cancelled"
)

// Class is a gym class with its weekly schedule.
type Class struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	Slug       string                   `json:"slug"`
	Instructor string                   `json:"instructor,omitempty"`
	Capacity   int                      `json:"capacity,omitempty"` // 0 means unlimited
	Slots      []schedule.RecurringSlot `json:"schedule"`
}

// HasSession reports whether the class runs on date (YYYY-MM-DD) at startTime.
func (c Class) HasSession(date, startTime string) bool {
	d, err := time.Parse(schedule.DateLayout, date)
	if err != nil {
		return false
	}
	start := schedule.NormalizeTime(startTime)
	for _, s := range c.Slots {
		if s.Valid() && s.Day == d.Weekday() && schedule.NormalizeTime(s.Start) == start {
			return true
		}
	}
	return false
}

// Booking is a member's reservation of one class session.
type Booking struct {
	ID        string    `json:"id"`
	ClassID   string    `json:"classId"`
	MemberID  string    `json:"memberId"`
	Date      string    `json:"date"`      // "YYYY-MM-DD"
	StartTime string    `json:"startTime"` // "HH:MM" or "HH:MM:SS"
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Active reports whether the booking still holds a place.
func (b Booking) Active() bool {
	return b.Status != StatusCancelled
}

// Source is where classes and bookings come from: the local store or the
// gym's REST backend.
type Source interface {
	ListClasses(ctx context.Context) ([]Class, error)
	ListBookings(ctx context.Context, memberID string) ([]Booking, error)
	CreateBooking(ctx context.Context, b Booking) (Booking, error)
	CancelBooking(ctx context.Context, id string) error
}

// ClassSlots converts classes into the resolver's input.
func ClassSlots(classes []Class) []schedule.ClassSlots {
	out := make([]schedule.ClassSlots, len(classes))
	for i, c := range classes {
		out[i] = schedule.ClassSlots{ClassID: c.ID, Slots: c.Slots}
	}
	return out
}

// FindClass looks up a class by id, name (case-insensitive) or slug.
// Returns nil if not found.
func FindClass(classes []Class, ref string) *Class {
	slug := Slugify(ref)
	for i := range classes {
		c := &classes[i]
		if c.ID == ref || strings.EqualFold(c.Name, ref) || (slug != "" && c.Slug == slug) {
			return c
		}
	}
	return nil
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a class name to a lowercase, hyphen-separated slug.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
