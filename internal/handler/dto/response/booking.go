package response

import (
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/domain/layout"
	"seat-reservation/internal/usecase"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	SeatID            string     `json:"seatId"`
	Date              string     `json:"date"`
	TimeSlot          string     `json:"timeSlot"`
	BookingTimestamp  time.Time  `json:"bookingTimestamp"`
	Status            string     `json:"status"`
	UserEmail         *string    `json:"userEmail,omitempty"`
	UserName          *string    `json:"userName,omitempty"`
	SpecialRequests   *string    `json:"specialRequests,omitempty"`
	TableNumber       *string    `json:"tableNumber,omitempty"`
	ContactPhone      *string    `json:"contactPhone,omitempty"`
	ModifiedTimestamp *time.Time `json:"modifiedTimestamp,omitempty"`
	ModifiedBy        *string    `json:"modifiedBy,omitempty"`
}

type UserDataResponse struct {
	UserBookings  []*BookingResponse `json:"userBookings"`
	TodayBooking  *BookingResponse   `json:"todayBooking"`
	TotalBookings int                `json:"totalBookings"`
}

type ReservedSeatsResponse struct {
	Date    string   `json:"date"`
	SeatIDs []string `json:"seatIds"`
}

type StatsResponse struct {
	TotalBookings     int `json:"totalBookings"`
	ActiveBookings    int `json:"activeBookings"`
	TodayBookings     int `json:"todayBookings"`
	CancelledBookings int `json:"cancelledBookings"`
}

type CacheInfoResponse struct {
	Initialized   bool `json:"isInitialized"`
	RecordCount   int  `json:"recordCount"`
	DroppedOnLoad int  `json:"droppedOnLoad"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

type SeatResponse struct {
	SeatID    string `json:"seatId"`
	Table     string `json:"table"`
	Available bool   `json:"available"`
}

type LayoutResponse struct {
	Date          string         `json:"date"`
	SeatsPerTable int            `json:"seatsPerTable"`
	Rows          [][]string     `json:"rows"`
	Seats         []SeatResponse `json:"seats"`
	Summary       map[string]int `json:"summary"`
}

func FromBooking(b booking.Booking) *BookingResponse {
	var res BookingResponse
	// Field names line up one-to-one; named string types convert to string.
	if err := copier.Copy(&res, &b); err != nil {
		res = BookingResponse{ID: b.ID, UserID: b.UserID}
	}
	return &res
}

func FromBookings(bs []booking.Booking) []*BookingResponse {
	out := make([]*BookingResponse, len(bs))
	for i, b := range bs {
		out[i] = FromBooking(b)
	}
	return out
}

func FromUserData(d usecase.UserData) *UserDataResponse {
	res := &UserDataResponse{
		UserBookings:  FromBookings(d.UserBookings),
		TotalBookings: d.TotalBookings,
	}
	if d.TodayBooking != nil {
		res.TodayBooking = FromBooking(*d.TodayBooking)
	}
	return res
}

func FromReservedSeats(date booking.Date, seats []booking.SeatID) *ReservedSeatsResponse {
	ids := make([]string, len(seats))
	for i, s := range seats {
		ids[i] = string(s)
	}
	return &ReservedSeatsResponse{Date: string(date), SeatIDs: ids}
}

func FromStats(s usecase.Stats) *StatsResponse {
	var res StatsResponse
	_ = copier.Copy(&res, &s)
	return &res
}

func FromCacheInfo(ci usecase.CacheInfo) *CacheInfoResponse {
	return &CacheInfoResponse{
		Initialized:   ci.Initialized,
		RecordCount:   ci.RecordCount,
		DroppedOnLoad: ci.DroppedOnLoad,
	}
}

func FromLayout(l *layout.Layout, date booking.Date, reserved []booking.SeatID) *LayoutResponse {
	taken := make(map[booking.SeatID]struct{}, len(reserved))
	for _, s := range reserved {
		taken[s] = struct{}{}
	}

	rows := make([][]string, 0)
	for _, r := range l.Rows() {
		rows = append(rows, r.Tables)
	}

	seats := make([]SeatResponse, 0)
	available := 0
	for _, s := range l.AllSeats() {
		_, isTaken := taken[s]
		if !isTaken {
			available++
		}
		seats = append(seats, SeatResponse{SeatID: string(s), Table: s.Table(), Available: !isTaken})
	}

	return &LayoutResponse{
		Date:          string(date),
		SeatsPerTable: l.SeatsPerTable(),
		Rows:          rows,
		Seats:         seats,
		Summary: map[string]int{
			"total":     len(seats),
			"available": available,
			"reserved":  len(seats) - available,
		},
	}
}
