package entity

import "time"

// Reservation is a table booking request. Write-only from this
// service's perspective: it is created on the gateway and never read
// back.
type Reservation struct {
	FullName       string
	PhoneNumber    string
	Date           time.Time
	Time           string // "HH:MM", one of the fixed service slots.
	NumberOfGuests int
	Notes          string // Optional.
}

// DateNanos converts the reservation date to the wire timestamp: the
// epoch millisecond value scaled to nanoseconds. The gateway protocol
// uses nanosecond-resolution integers, so the ×1,000,000 factor must
// not change.
func (r Reservation) DateNanos() int64 {
	return r.Date.UnixMilli() * 1_000_000
}

// TimeSlots is the fixed set of reservable half-hour slots across the
// two service windows: lunch (11:00–14:00) and dinner (18:00–21:00).
var TimeSlots = []string{
	"11:00", "11:30", "12:00", "12:30", "13:00", "13:30", "14:00",
	"18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00",
}

// IsReservableSlot reports whether t is one of the fixed service slots.
func IsReservableSlot(t string) bool {
	for _, slot := range TimeSlots {
		if slot == t {
			return true
		}
	}

	return false
}
