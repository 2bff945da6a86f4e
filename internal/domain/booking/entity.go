package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrInvalidTimeSlot = errors.New("invalid time slot")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidSeatID   = errors.New("invalid seat id")
	ErrEmptyUserID     = errors.New("user id is required")
	ErrNotActive       = errors.New("booking is not active")
)

// Booking is the single persisted record. Pointer fields are optional and
// nil when absent; older rows may predate some of them.
type Booking struct {
	ID               string
	UserID           string
	SeatID           SeatID
	Date             Date
	TimeSlot         TimeSlot
	BookingTimestamp time.Time
	Status           Status

	UserEmail         *string
	UserName          *string
	SpecialRequests   *string
	TableNumber       *string
	ContactPhone      *string
	ModifiedTimestamp *time.Time
	ModifiedBy        *string
}

func (b Booking) IsActive() bool {
	return b.Status == StatusActive
}

func (b Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Claims reports whether b is an active claim on seat for date that collides with slot.
func (b Booking) Claims(seat SeatID, date Date, slot TimeSlot) bool {
	return b.IsActive() &&
		b.SeatID == seat &&
		b.Date == date &&
		b.TimeSlot.Overlaps(slot)
}

// Cancel moves an active booking to CANCELLED. There is no way back.
func (b *Booking) Cancel(by string, at time.Time) error {
	if !b.IsActive() {
		return ErrNotActive
	}
	at = at.UTC().Truncate(time.Millisecond)
	b.Status = StatusCancelled
	b.ModifiedTimestamp = &at
	b.ModifiedBy = &by
	return nil
}
