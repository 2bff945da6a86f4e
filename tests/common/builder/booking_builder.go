//go:build unit || e2e

package builder

import (
	"time"

	"seat-reservation/internal/domain/booking"
	reqdto "seat-reservation/internal/handler/dto/request"
	"seat-reservation/internal/usecase"
)

type BookingBuilder struct {
	ID                string
	UserID            string
	SeatID            booking.SeatID
	Date              booking.Date
	TimeSlot          booking.TimeSlot
	Status            booking.Status
	BookingTimestamp  time.Time
	UserEmail         *string
	UserName          *string
	SpecialRequests   *string
	ContactPhone      *string
	ModifiedTimestamp *time.Time
	ModifiedBy        *string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:               "BOOK_1718000000000_ABC123",
		UserID:           "alice",
		SeatID:           "A1",
		Date:             "2024-06-10",
		TimeSlot:         booking.SlotAM,
		Status:           booking.StatusActive,
		BookingTimestamp: time.Date(2024, 6, 10, 8, 30, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() booking.Booking {
	table := b.SeatID.Table()
	return booking.Booking{
		ID:                b.ID,
		UserID:            b.UserID,
		SeatID:            b.SeatID,
		Date:              b.Date,
		TimeSlot:          b.TimeSlot,
		BookingTimestamp:  b.BookingTimestamp,
		Status:            b.Status,
		UserEmail:         b.UserEmail,
		UserName:          b.UserName,
		SpecialRequests:   b.SpecialRequests,
		TableNumber:       &table,
		ContactPhone:      b.ContactPhone,
		ModifiedTimestamp: b.ModifiedTimestamp,
		ModifiedBy:        b.ModifiedBy,
	}
}

func (b *BookingBuilder) BuildParams() usecase.CreateBookingParams {
	date := b.Date
	return usecase.CreateBookingParams{
		UserID:   b.UserID,
		SeatID:   b.SeatID,
		TimeSlot: b.TimeSlot,
		Date:     &date,
		Details: booking.Details{
			UserEmail:       b.UserEmail,
			UserName:        b.UserName,
			SpecialRequests: b.SpecialRequests,
			ContactPhone:    b.ContactPhone,
		},
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	date := string(b.Date)
	return reqdto.CreateBookingRequest{
		SeatID:          string(b.SeatID),
		TimeSlot:        string(b.TimeSlot),
		Date:            &date,
		UserEmail:       b.UserEmail,
		UserName:        b.UserName,
		SpecialRequests: b.SpecialRequests,
		ContactPhone:    b.ContactPhone,
	}
}
