package booking

import (
	"fmt"
	"strings"
	"time"

	"seat-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

type IDGenerator interface {
	NewID(now time.Time) string
}

// TimestampIDGenerator builds ids of the form BOOK_<unix millis>_<6 random chars>.
type TimestampIDGenerator struct{}

func NewTimestampIDGenerator() *TimestampIDGenerator {
	return &TimestampIDGenerator{}
}

func (TimestampIDGenerator) NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return strings.ToUpper(fmt.Sprintf("BOOK_%d_%s", now.UnixMilli(), suffix))
}

type Factory struct {
	Clock clock.Clock
	IDs   IDGenerator
}

func NewFactory(clock clock.Clock, ids IDGenerator) *Factory {
	return &Factory{
		Clock: clock,
		IDs:   ids,
	}
}

// CreateBooking builds a fresh ACTIVE record. It does not check any
// cross-record rule; that is the caller's job against its record set.
func (f *Factory) CreateBooking(
	userID string,
	seat SeatID,
	slot TimeSlot,
	date Date,
	details Details,
) (*Booking, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrEmptyUserID
	}
	if !slot.IsValid() {
		return nil, ErrInvalidTimeSlot
	}
	if _, err := ParseSeatID(string(seat)); err != nil {
		return nil, err
	}
	if _, err := ParseDate(string(date)); err != nil {
		return nil, err
	}

	now := f.Clock.Now().UTC().Truncate(time.Millisecond)
	table := seat.Table()
	d := details.normalized()

	return &Booking{
		ID:               f.IDs.NewID(now),
		UserID:           userID,
		SeatID:           seat,
		Date:             date,
		TimeSlot:         slot,
		BookingTimestamp: now,
		Status:           StatusActive,
		UserEmail:        d.UserEmail,
		UserName:         d.UserName,
		SpecialRequests:  d.SpecialRequests,
		TableNumber:      &table,
		ContactPhone:     d.ContactPhone,
	}, nil
}
