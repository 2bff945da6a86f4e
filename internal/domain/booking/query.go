package booking

// Read-only helpers over a record list. All are linear scans.

func HasActiveBookingFor(records []Booking, userID string, date Date) bool {
	_, ok := ActiveBookingFor(records, userID, date)
	return ok
}

func ActiveBookingFor(records []Booking, userID string, date Date) (Booking, bool) {
	for _, b := range records {
		if b.UserID == userID && b.Date == date && b.IsActive() {
			return b, true
		}
	}
	return Booking{}, false
}

func ActiveBookingsOn(records []Booking, date Date) []Booking {
	out := make([]Booking, 0)
	for _, b := range records {
		if b.Date == date && b.IsActive() {
			out = append(out, b)
		}
	}
	return out
}

// ReservedSeatIDsOn lists each seat with an active claim on date once, in first-seen order.
func ReservedSeatIDsOn(records []Booking, date Date) []SeatID {
	active := ActiveBookingsOn(records, date)
	seen := make(map[SeatID]struct{}, len(active))
	out := make([]SeatID, 0, len(active))
	for _, b := range active {
		if _, dup := seen[b.SeatID]; dup {
			continue
		}
		seen[b.SeatID] = struct{}{}
		out = append(out, b.SeatID)
	}
	return out
}

// SeatConflict returns the first active record whose claim collides with the requested one.
func SeatConflict(records []Booking, seat SeatID, date Date, slot TimeSlot) (Booking, bool) {
	for _, b := range records {
		if b.Claims(seat, date, slot) {
			return b, true
		}
	}
	return Booking{}, false
}

func ForUser(records []Booking, userID string) []Booking {
	out := make([]Booking, 0)
	for _, b := range records {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}
