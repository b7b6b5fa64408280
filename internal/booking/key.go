// Package booking matches resolved class occurrences against a member's
// existing bookings.
package booking

import (
	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/gymdesk/gymdesk/internal/schedule"
)

// Key builds the composite identity of a class session. Both the occurrence
// side and the booking side must go through this function; a time that is
// normalized on one side only never matches.
func Key(classID, date, startTime string) string {
	return classID + "-" + date + "-" + schedule.NormalizeTime(startTime)
}

// KeySet is the set of session keys a member currently holds.
type KeySet map[string]string

// NewKeySet indexes active bookings by session key. The value is the booking
// id, so a booked session can be cancelled. Cancelled bookings are left out.
func NewKeySet(bookings []gym.Booking) KeySet {
	set := make(KeySet, len(bookings))
	for _, b := range bookings {
		if !b.Active() {
			continue
		}
		set[Key(b.ClassID, b.Date, b.StartTime)] = b.ID
	}
	return set
}

// Has reports whether key is in the set.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// IsBooked reports whether occ is already booked.
func IsBooked(occ schedule.Occurrence, set KeySet) bool {
	return set.Has(Key(occ.ClassID, occ.Date, occ.Time))
}

// Session is an occurrence annotated with the member's booking state.
type Session struct {
	schedule.Occurrence
	Booked    bool
	BookingID string
}

// Annotate marks each occurrence as booked or not, carrying the booking id
// of booked sessions.
func Annotate(occs []schedule.Occurrence, bookings []gym.Booking) []Session {
	set := NewKeySet(bookings)
	sessions := make([]Session, len(occs))
	for i, occ := range occs {
		id, ok := set[Key(occ.ClassID, occ.Date, occ.Time)]
		sessions[i] = Session{Occurrence: occ, Booked: ok, BookingID: id}
	}
	return sessions
}
