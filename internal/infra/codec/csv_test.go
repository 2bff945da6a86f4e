//go:build unit

package codec_test

import (
	"strings"
	"testing"
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/infra/codec"
	"seat-reservation/tests/common/builder"
	"seat-reservation/tests/common/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
}

const headerLine = "id,userId,seatId,date,timeSlot,bookingTimestamp,status,userEmail,userName,specialRequests,tableNumber,contactPhone,modifiedTimestamp,modifiedBy"

func TestEncode(t *testing.T) {
	t.Run("empty table is header only", func(t *testing.T) {
		assert.Equal(t, headerLine, codec.Encode(nil))
	})

	t.Run("row layout", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()

		got := codec.Encode([]booking.Booking{b})

		want := headerLine + "\n" +
			"BOOK_1718000000000_ABC123,alice,A1,2024-06-10,AM,2024-06-10T08:30:00.000Z,ACTIVE,,,,A,,,"
		assert.Equal(t, want, got)
	})

	t.Run("delimiter and quote escaping", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.SpecialRequests = testutil.Ptr(`a,b"c`)
			b.UserName = testutil.Ptr(`say "hi"`)
		}).BuildDomain()

		got := codec.Encode([]booking.Booking{b})

		assert.Contains(t, got, `,"say ""hi""","a,b""c",`)
	})

	t.Run("timestamps are written in UTC with milliseconds", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.BookingTimestamp = time.Date(2024, 6, 10, 17, 30, 0, 5_000_000, jst)
		}).BuildDomain()

		assert.Contains(t, codec.Encode([]booking.Booking{b}), ",2024-06-10T08:30:00.005Z,")
	})
}

func TestRoundTrip(t *testing.T) {
	modified := time.Date(2024, 6, 10, 9, 0, 0, 250_000_000, time.UTC)
	records := []booking.Booking{
		builder.NewBookingBuilder().BuildDomain(),
		builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = "BOOK_1718000000001_DEF456"
			b.UserID = "bob"
			b.SeatID = "F6"
			b.TimeSlot = booking.SlotFullDay
			b.Status = booking.StatusCancelled
			b.UserEmail = testutil.Ptr("bob@example.com")
			b.UserName = testutil.Ptr("Bob, Jr.")
			b.SpecialRequests = testutil.Ptr(`needs a "quiet" corner`)
			b.ContactPhone = testutil.Ptr("+81 90 0000 0000")
			b.ModifiedTimestamp = &modified
			b.ModifiedBy = testutil.Ptr("bob")
		}).BuildDomain(),
	}

	got, stats := codec.Decode(codec.Encode(records))

	assert.Equal(t, codec.DecodeStats{Rows: 2, Dropped: 0}, stats)
	if diff := cmp.Diff(records, got, cmpOpts...); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		got, stats := codec.Decode("")
		assert.Empty(t, got)
		assert.Equal(t, codec.DecodeStats{}, stats)
	})

	t.Run("header only", func(t *testing.T) {
		got, stats := codec.Decode(headerLine + "\n")
		assert.Empty(t, got)
		assert.Zero(t, stats.Rows)
	})

	t.Run("rows without optional columns", func(t *testing.T) {
		text := strings.Join([]string{
			"id,userId,seatId,date,timeSlot,bookingTimestamp,status",
			"B1,alice,A1,2024-06-10,PM,2024-06-10T08:30:00.000Z,ACTIVE",
		}, "\n")

		got, stats := codec.Decode(text)

		require.Len(t, got, 1)
		assert.Zero(t, stats.Dropped)
		assert.Equal(t, booking.SlotPM, got[0].TimeSlot)
		assert.Nil(t, got[0].UserEmail)
		assert.Nil(t, got[0].TableNumber)
		assert.Nil(t, got[0].ModifiedTimestamp)
	})

	t.Run("empty slot and status fall back to AM and ACTIVE", func(t *testing.T) {
		text := headerLine + "\n" + "B1,alice,A1,2024-06-10,,2024-06-10T08:30:00.000Z,"

		got, _ := codec.Decode(text)

		require.Len(t, got, 1)
		assert.Equal(t, booking.SlotAM, got[0].TimeSlot)
		assert.Equal(t, booking.StatusActive, got[0].Status)
	})

	t.Run("CRLF line endings and blank lines", func(t *testing.T) {
		text := headerLine + "\r\n\r\n" +
			"B1,alice,A1,2024-06-10,AM,2024-06-10T08:30:00.000Z,ACTIVE\r\n" +
			"\r\n" +
			"B2,bob,A2,2024-06-10,PM,2024-06-10T08:31:00.000Z,CANCELLED\r\n"

		got, stats := codec.Decode(text)

		require.Len(t, got, 2)
		assert.Equal(t, codec.DecodeStats{Rows: 2}, stats)
		assert.Equal(t, "B2", got[1].ID)
		assert.Equal(t, booking.StatusCancelled, got[1].Status)
	})

	t.Run("malformed rows are dropped and counted", func(t *testing.T) {
		text := strings.Join([]string{
			headerLine,
			"B1,alice,A1,2024-06-10,AM,2024-06-10T08:30:00.000Z,ACTIVE",
			"too,short",
			",alice,A1,2024-06-10,AM,2024-06-10T08:30:00.000Z,ACTIVE",
			"B3,alice,??,2024-06-10,AM,2024-06-10T08:30:00.000Z,ACTIVE",
			"B4,alice,A1,10/06/2024,AM,2024-06-10T08:30:00.000Z,ACTIVE",
			"B5,alice,A1,2024-06-10,NIGHT,2024-06-10T08:30:00.000Z,ACTIVE",
			"B6,alice,A1,2024-06-10,AM,2024-06-10T08:30:00.000Z,PENDING",
			"B7,alice,A1,2024-06-10,AM,yesterday,ACTIVE",
			"B8,alice,A1,2024-06-10,AM,2024-06-10T08:30:00.000Z,ACTIVE,,,,,,,,extra",
			"B9,bob,B2,2024-06-11,FULL_DAY,2024-06-10T08:30:00.000Z,ACTIVE",
		}, "\n")

		got, stats := codec.Decode(text)

		assert.Equal(t, codec.DecodeStats{Rows: 10, Dropped: 8}, stats)
		require.Len(t, got, 2)
		assert.Equal(t, "B1", got[0].ID)
		assert.Equal(t, "B9", got[1].ID)
	})

	t.Run("unparsable modified timestamp is treated as absent", func(t *testing.T) {
		text := headerLine + "\n" +
			"B1,alice,A1,2024-06-10,AM,2024-06-10T08:30:00.000Z,CANCELLED,,,,A,,not-a-time,alice"

		got, stats := codec.Decode(text)

		require.Len(t, got, 1)
		assert.Zero(t, stats.Dropped)
		assert.Nil(t, got[0].ModifiedTimestamp)
		require.NotNil(t, got[0].ModifiedBy)
		assert.Equal(t, "alice", *got[0].ModifiedBy)
	})

	t.Run("header line is skipped whatever it contains", func(t *testing.T) {
		text := "legacy,header\nB1,alice,a1,2024-06-10,AM,2024-06-10T08:30:00.000Z,ACTIVE"

		got, _ := codec.Decode(text)

		require.Len(t, got, 1)
		assert.Equal(t, booking.SeatID("A1"), got[0].SeatID)
	})
}
