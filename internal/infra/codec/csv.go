// Package codec converts booking records to and from the delimited text
// table kept in the blob store.
package codec

import (
	"encoding/csv"
	"strings"
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/pkg/patch"
)

// Header is the fixed column order. New optional columns are only ever appended.
var Header = []string{
	"id",
	"userId",
	"seatId",
	"date",
	"timeSlot",
	"bookingTimestamp",
	"status",
	"userEmail",
	"userName",
	"specialRequests",
	"tableNumber",
	"contactPhone",
	"modifiedTimestamp",
	"modifiedBy",
}

const (
	// id through status must be present on every row.
	requiredColumns = 7

	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

const (
	colID = iota
	colUserID
	colSeatID
	colDate
	colTimeSlot
	colBookingTimestamp
	colStatus
	colUserEmail
	colUserName
	colSpecialRequests
	colTableNumber
	colContactPhone
	colModifiedTimestamp
	colModifiedBy
)

type DecodeStats struct {
	Rows    int // data rows seen, blank lines excluded
	Dropped int // rows that could not be turned into a record
}

func Encode(records []booking.Booking) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(Header, ","))
	for _, b := range records {
		lines = append(lines, encodeRow(b))
	}
	return strings.Join(lines, "\n")
}

// Decode is best-effort: malformed rows are skipped and counted, never fatal.
func Decode(text string) ([]booking.Booking, DecodeStats) {
	var stats DecodeStats
	records := make([]booking.Booking, 0)

	headerSeen := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !headerSeen {
			headerSeen = true
			continue
		}

		stats.Rows++
		b, ok := decodeRow(line)
		if !ok {
			stats.Dropped++
			continue
		}
		records = append(records, b)
	}
	return records, stats
}

func encodeRow(b booking.Booking) string {
	fields := make([]string, len(Header))
	fields[colID] = b.ID
	fields[colUserID] = b.UserID
	fields[colSeatID] = string(b.SeatID)
	fields[colDate] = string(b.Date)
	fields[colTimeSlot] = string(b.TimeSlot)
	fields[colBookingTimestamp] = formatTime(&b.BookingTimestamp)
	fields[colStatus] = string(b.Status)
	fields[colUserEmail] = patch.Coalesce(b.UserEmail, "")
	fields[colUserName] = patch.Coalesce(b.UserName, "")
	fields[colSpecialRequests] = patch.Coalesce(b.SpecialRequests, "")
	fields[colTableNumber] = patch.Coalesce(b.TableNumber, "")
	fields[colContactPhone] = patch.Coalesce(b.ContactPhone, "")
	fields[colModifiedTimestamp] = formatTime(b.ModifiedTimestamp)
	fields[colModifiedBy] = patch.Coalesce(b.ModifiedBy, "")

	for i, f := range fields {
		fields[i] = quote(f)
	}
	return strings.Join(fields, ",")
}

// quote wraps a field only when it holds the delimiter or a quote, doubling inner quotes.
func quote(field string) string {
	if !strings.ContainsAny(field, `,"`) {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func splitRow(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.Read()
}

func decodeRow(line string) (booking.Booking, bool) {
	fields, err := splitRow(line)
	if err != nil || len(fields) < requiredColumns || len(fields) > len(Header) {
		return booking.Booking{}, false
	}
	// Rows written before a column existed are simply shorter.
	for len(fields) < len(Header) {
		fields = append(fields, "")
	}

	if fields[colID] == "" || fields[colUserID] == "" {
		return booking.Booking{}, false
	}
	seat, err := booking.ParseSeatID(fields[colSeatID])
	if err != nil {
		return booking.Booking{}, false
	}
	date, err := booking.ParseDate(fields[colDate])
	if err != nil {
		return booking.Booking{}, false
	}

	slotText := fields[colTimeSlot]
	if slotText == "" {
		slotText = string(booking.SlotAM)
	}
	slot, err := booking.ParseTimeSlot(slotText)
	if err != nil {
		return booking.Booking{}, false
	}

	statusText := fields[colStatus]
	if statusText == "" {
		statusText = string(booking.StatusActive)
	}
	status, err := booking.ParseStatus(statusText)
	if err != nil {
		return booking.Booking{}, false
	}

	bookedAt, err := time.Parse(time.RFC3339Nano, fields[colBookingTimestamp])
	if err != nil {
		return booking.Booking{}, false
	}

	var modifiedAt *time.Time
	if t, err := time.Parse(time.RFC3339Nano, fields[colModifiedTimestamp]); err == nil {
		modifiedAt = &t
	}

	return booking.Booking{
		ID:                fields[colID],
		UserID:            fields[colUserID],
		SeatID:            seat,
		Date:              date,
		TimeSlot:          slot,
		BookingTimestamp:  bookedAt,
		Status:            status,
		UserEmail:         patch.NilIfZero(fields[colUserEmail]),
		UserName:          patch.NilIfZero(fields[colUserName]),
		SpecialRequests:   patch.NilIfZero(fields[colSpecialRequests]),
		TableNumber:       patch.NilIfZero(fields[colTableNumber]),
		ContactPhone:      patch.NilIfZero(fields[colContactPhone]),
		ModifiedTimestamp: modifiedAt,
		ModifiedBy:        patch.NilIfZero(fields[colModifiedBy]),
	}, true
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}
