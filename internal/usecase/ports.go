package usecase

import (
	"context"

	"seat-reservation/internal/domain/booking"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/mock_ports.go -package=usecasemock

// BlobStore is the key-value store holding the serialized booking table.
// Get reports found=false, not an error, when the key was never written.
type BlobStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

type BookingUseCase interface {
	Initialize(ctx context.Context)
	CreateBooking(ctx context.Context, params CreateBookingParams) (*booking.Booking, error)
	CancelBooking(ctx context.Context, bookingID, userID string) error
	GetReservedSeats(ctx context.Context, date *booking.Date) (booking.Date, []booking.SeatID)
	LoadUserData(ctx context.Context, userID string) UserData
	GetUserBookings(ctx context.Context, userID string) []booking.Booking
	TodayBooking(ctx context.Context, userID string) *booking.Booking
	Refresh(ctx context.Context) error
	ImportBookings(ctx context.Context, text string) (int, error)
	Export(ctx context.Context) string
	Stats(ctx context.Context) Stats
	CacheInfo() CacheInfo
}

type CreateBookingParams struct {
	UserID   string
	SeatID   booking.SeatID
	TimeSlot booking.TimeSlot
	Date     *booking.Date // nil means today
	Details  booking.Details
}

type UserData struct {
	UserBookings  []booking.Booking
	TodayBooking  *booking.Booking
	TotalBookings int
}

type Stats struct {
	TotalBookings     int
	ActiveBookings    int
	TodayBookings     int
	CancelledBookings int
}

type CacheInfo struct {
	Initialized   bool
	RecordCount   int
	DroppedOnLoad int
}
