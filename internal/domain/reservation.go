package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBooking/pkg/types"
)

// Reservation is one seat booked by a named person for a calendar day.
// The date of a reservation never changes; only the name can be edited.
type Reservation struct {
	ID        uuid.UUID
	Name      string
	Date      types.Date
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BelongsTo reports whether the reservation is held by name (trimmed, case-insensitive)
func (r *Reservation) BelongsTo(name string) bool {
	return SameName(r.Name, name)
}

// IsPast returns true if the reservation date is strictly before today
func (r *Reservation) IsPast(today types.Date) bool {
	return r.Date.Before(today)
}

// NormalizeName trims surrounding whitespace of a user-entered name
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// SameName compares two names the way uniqueness is enforced: trimmed and case-insensitive
func SameName(a, b string) bool {
	return strings.EqualFold(NormalizeName(a), NormalizeName(b))
}

// ReservationsByDate groups reservations by their YYYY-MM-DD date key.
// Dates without reservations are absent; callers must default to an empty list.
type ReservationsByDate map[string][]*Reservation

// For returns the reservations of the date, or nil when there are none
func (m ReservationsByDate) For(date types.Date) []*Reservation {
	return m[date.String()]
}
