package request

import (
	"strings"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/usecase"
)

type CreateBookingRequest struct {
	SeatID          string  `json:"seatId" binding:"required"`
	TimeSlot        string  `json:"timeSlot" binding:"required,oneof=AM PM FULL_DAY"`
	Date            *string `json:"date,omitempty"`
	UserEmail       *string `json:"userEmail,omitempty" binding:"omitempty,email"`
	UserName        *string `json:"userName,omitempty" binding:"omitempty,max=100"`
	SpecialRequests *string `json:"specialRequests,omitempty" binding:"omitempty,max=500"`
	ContactPhone    *string `json:"contactPhone,omitempty" binding:"omitempty,max=32"`
}

// ToParams validates the free-form fields and builds the service call for userID.
func (r CreateBookingRequest) ToParams(userID string) (usecase.CreateBookingParams, error) {
	seat, err := booking.ParseSeatID(r.SeatID)
	if err != nil {
		return usecase.CreateBookingParams{}, err
	}

	slot, err := booking.ParseTimeSlot(r.TimeSlot)
	if err != nil {
		return usecase.CreateBookingParams{}, err
	}

	date, err := ParseOptionalDate(r.Date)
	if err != nil {
		return usecase.CreateBookingParams{}, err
	}

	return usecase.CreateBookingParams{
		UserID:   userID,
		SeatID:   seat,
		TimeSlot: slot,
		Date:     date,
		Details: booking.Details{
			UserEmail:       r.UserEmail,
			UserName:        r.UserName,
			SpecialRequests: r.SpecialRequests,
			ContactPhone:    r.ContactPhone,
		},
	}, nil
}

// ParseOptionalDate maps a missing or blank date to nil (today).
func ParseOptionalDate(raw *string) (*booking.Date, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	d, err := booking.ParseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
