//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/domain/layout"
	"seat-reservation/internal/infra/blobstore"
	"seat-reservation/internal/infra/codec"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase"
	"seat-reservation/tests/common/builder"
	usecasemock "seat-reservation/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const storeKey = "seat_booking_csv_database"

var (
	today    = booking.Date("2025-06-10")
	tomorrow = booking.Date("2025-06-11")
)

// sequenceIDs hands out ids in order, then falls back to a counter.
type sequenceIDs struct {
	ids []string
	n   int
}

func (s *sequenceIDs) NewID(time.Time) string {
	s.n++
	if s.n <= len(s.ids) {
		return s.ids[s.n-1]
	}
	return "BOOK_GEN_" + string(rune('A'+s.n))
}

type BookingServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	clock  *clock.MockClock
	store  *blobstore.MemoryStore
	layout *layout.Layout
	logger *slog.Logger
	svc    *usecase.BookingService
}

func (s *BookingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)).Tick(time.Millisecond)
	s.store = blobstore.NewMemoryStore()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	l, err := layout.NewLayout([]string{"A", "B", "C", "D", "E", "F"}, 6, 3)
	s.Require().NoError(err)
	s.layout = l

	s.svc = s.newService(s.store, booking.NewTimestampIDGenerator())
}

func (s *BookingServiceTestSuite) newService(store usecase.BlobStore, ids booking.IDGenerator) *usecase.BookingService {
	return usecase.NewBookingService(usecase.BookingServiceOptions{
		Store:    store,
		Key:      storeKey,
		Factory:  booking.NewFactory(s.clock, ids),
		Layout:   s.layout,
		Clock:    s.clock,
		Location: time.UTC,
		Logger:   s.logger,
	})
}

func TestBookingServiceSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}

func (s *BookingServiceTestSuite) create(userID string, seat booking.SeatID, slot booking.TimeSlot, date booking.Date) (*booking.Booking, error) {
	return s.svc.CreateBooking(s.ctx, usecase.CreateBookingParams{
		UserID:   userID,
		SeatID:   seat,
		TimeSlot: slot,
		Date:     &date,
	})
}

func (s *BookingServiceTestSuite) mustCreate(userID string, seat booking.SeatID, slot booking.TimeSlot, date booking.Date) *booking.Booking {
	b, err := s.create(userID, seat, slot, date)
	s.Require().NoError(err)
	return b
}

func (s *BookingServiceTestSuite) seedStore(records ...booking.Booking) {
	s.Require().NoError(s.store.Set(s.ctx, storeKey, codec.Encode(records)))
}

func (s *BookingServiceTestSuite) persisted() []booking.Booking {
	text, found, err := s.store.Get(s.ctx, storeKey)
	s.Require().NoError(err)
	s.Require().True(found, "booking table was never written")
	records, stats := codec.Decode(text)
	s.Require().Zero(stats.Dropped)
	return records
}

// ================================================================================
// Initialization
// ================================================================================

func (s *BookingServiceTestSuite) TestInitialize() {
	s.Run("missing table starts empty", func() {
		s.False(s.svc.CacheInfo().Initialized)

		s.svc.Initialize(s.ctx)

		info := s.svc.CacheInfo()
		s.True(info.Initialized)
		s.Zero(info.RecordCount)
	})

	s.Run("existing table is loaded lazily by the first call", func() {
		s.seedStore(builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Date = today
		}).BuildDomain())
		svc := s.newService(s.store, booking.NewTimestampIDGenerator())

		seats := func() []booking.SeatID {
			_, ids := svc.GetReservedSeats(s.ctx, nil)
			return ids
		}()

		s.Equal([]booking.SeatID{"A1"}, seats)
		s.Equal(1, svc.CacheInfo().RecordCount)
	})

	s.Run("malformed rows are counted", func() {
		s.Require().NoError(s.store.Set(s.ctx, storeKey, codec.Encode(nil)+"\nbroken,row"))
		svc := s.newService(s.store, booking.NewTimestampIDGenerator())

		svc.Initialize(s.ctx)

		s.Equal(usecase.CacheInfo{Initialized: true, RecordCount: 0, DroppedOnLoad: 1}, svc.CacheInfo())
	})

	s.Run("read failure degrades to an empty cache", func() {
		ctrl := gomock.NewController(s.T())
		store := usecasemock.NewMockBlobStore(ctrl)
		store.EXPECT().Get(gomock.Any(), storeKey).Return("", false, errors.New("disk on fire")).Times(1)
		svc := s.newService(store, booking.NewTimestampIDGenerator())

		svc.Initialize(s.ctx)
		svc.Initialize(s.ctx)

		s.Equal(usecase.CacheInfo{Initialized: true}, svc.CacheInfo())
		s.Equal(usecase.Stats{}, svc.Stats(s.ctx))
	})
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingServiceTestSuite) TestCreateBooking() {
	s.Run("success: record is cached and persisted", func() {
		b := s.mustCreate("alice", "C3", booking.SlotFullDay, today)

		s.True(b.IsActive())
		s.Equal(today, b.Date)
		s.Require().NotNil(b.TableNumber)
		s.Equal("C", *b.TableNumber)
		s.Regexp(`^BOOK_\d+_[0-9A-F]{6}$`, b.ID)

		if diff := cmp.Diff([]booking.Booking{*b}, s.persisted(), cmpopts.EquateEmpty()); diff != "" {
			s.Failf("persisted table mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("date defaults to today", func() {
		b, err := s.svc.CreateBooking(s.ctx, usecase.CreateBookingParams{
			UserID:   "bob",
			SeatID:   "A2",
			TimeSlot: booking.SlotAM,
		})
		s.Require().NoError(err)
		s.Equal(today, b.Date)
	})

	s.Run("one booking per user per day", func() {
		_, err := s.create("alice", "F6", booking.SlotPM, today)
		s.ErrorIs(err, usecase.ErrDuplicateDay)
		s.Equal(2, s.svc.CacheInfo().RecordCount, "cache length unchanged")

		_, err = s.create("alice", "F6", booking.SlotPM, tomorrow)
		s.NoError(err, "another day is fine")
	})

	s.Run("duplicate day wins over seat conflict", func() {
		_, err := s.create("alice", "A2", booking.SlotAM, today)
		s.ErrorIs(err, usecase.ErrDuplicateDay)
	})
}

func (s *BookingServiceTestSuite) TestSeatConflict() {
	s.mustCreate("alice", "A1", booking.SlotFullDay, today)
	s.mustCreate("bob", "B1", booking.SlotAM, today)

	cases := []struct {
		name  string
		user  string
		seat  booking.SeatID
		slot  booking.TimeSlot
		errIs error
	}{
		{name: "AM against FULL_DAY", user: "carol", seat: "A1", slot: booking.SlotAM, errIs: usecase.ErrSeatConflict},
		{name: "PM against FULL_DAY", user: "carol", seat: "A1", slot: booking.SlotPM, errIs: usecase.ErrSeatConflict},
		{name: "FULL_DAY against AM", user: "carol", seat: "B1", slot: booking.SlotFullDay, errIs: usecase.ErrSeatConflict},
		{name: "AM against AM", user: "carol", seat: "B1", slot: booking.SlotAM, errIs: usecase.ErrSeatConflict},
		{name: "PM next to AM", user: "dave", seat: "B1", slot: booking.SlotPM},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.create(tc.user, tc.seat, tc.slot, today)
			if tc.errIs == nil {
				s.NoError(err)
				return
			}
			s.ErrorIs(err, tc.errIs)
		})
	}
}

func (s *BookingServiceTestSuite) TestCreateBookingGuards() {
	s.Run("seat outside the layout", func() {
		_, err := s.create("alice", "G1", booking.SlotAM, today)
		s.ErrorIs(err, usecase.ErrUnknownSeat)

		_, err = s.create("alice", "A7", booking.SlotAM, today)
		s.ErrorIs(err, usecase.ErrUnknownSeat)
	})

	s.Run("factory validation is a rejection", func() {
		_, err := s.create("   ", "A1", booking.SlotAM, today)
		s.Require().Error(err)
		rejection, ok := usecase.AsRejection(err)
		s.True(ok)
		s.Equal(usecase.ErrInvalidBooking, rejection)
	})

	s.Run("colliding ids are regenerated", func() {
		s.seedStore(builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = "BOOK_TAKEN"
			b.Date = tomorrow
		}).BuildDomain())
		svc := s.newService(s.store, &sequenceIDs{ids: []string{"BOOK_TAKEN", "BOOK_FREE"}})

		b, err := svc.CreateBooking(s.ctx, usecase.CreateBookingParams{
			UserID: "bob", SeatID: "B2", TimeSlot: booking.SlotAM, Date: &today,
		})
		s.Require().NoError(err)
		s.Equal("BOOK_FREE", b.ID)
	})
}

// ================================================================================
// CancelBooking
// ================================================================================

func (s *BookingServiceTestSuite) TestCancelBooking() {
	b := s.mustCreate("alice", "A1", booking.SlotAM, today)

	s.Run("only the owner can cancel", func() {
		err := s.svc.CancelBooking(s.ctx, b.ID, "mallory")
		s.ErrorIs(err, usecase.ErrBookingNotFound)
		s.Equal(booking.StatusActive, s.persisted()[0].Status)
	})

	s.Run("unknown id", func() {
		s.ErrorIs(s.svc.CancelBooking(s.ctx, "BOOK_NOPE", "alice"), usecase.ErrBookingNotFound)
	})

	s.Run("owner cancels", func() {
		s.Require().NoError(s.svc.CancelBooking(s.ctx, b.ID, "alice"))

		got := s.persisted()[0]
		s.Equal(booking.StatusCancelled, got.Status)
		s.Require().NotNil(got.ModifiedBy)
		s.Equal("alice", *got.ModifiedBy)
		s.Require().NotNil(got.ModifiedTimestamp)
		s.True(got.ModifiedTimestamp.After(got.BookingTimestamp))
	})

	s.Run("second cancel is rejected", func() {
		err := s.svc.CancelBooking(s.ctx, b.ID, "alice")
		s.True(errs.Is(err, usecase.ErrBookingNotActive))
		s.True(usecase.IsRejection(err))
	})

	s.Run("rebooking after cancel is allowed", func() {
		_, err := s.create("alice", "A1", booking.SlotAM, today)
		s.NoError(err)
	})
}

// ================================================================================
// Queries
// ================================================================================

func (s *BookingServiceTestSuite) TestReservedSeats() {
	s.mustCreate("alice", "A1", booking.SlotAM, today)
	b2 := s.mustCreate("bob", "B2", booking.SlotPM, today)
	s.mustCreate("carol", "C3", booking.SlotAM, tomorrow)
	s.Require().NoError(s.svc.CancelBooking(s.ctx, b2.ID, "bob"))

	date, seats := s.svc.GetReservedSeats(s.ctx, &today)
	s.Equal(today, date)
	s.Equal([]booking.SeatID{"A1"}, seats)

	date, seats = s.svc.GetReservedSeats(s.ctx, nil)
	s.Equal(today, date, "nil date means today")
	s.Equal([]booking.SeatID{"A1"}, seats)

	_, seats = s.svc.GetReservedSeats(s.ctx, &tomorrow)
	s.Equal([]booking.SeatID{"C3"}, seats)
}

func (s *BookingServiceTestSuite) TestUserData() {
	first := s.mustCreate("alice", "A1", booking.SlotAM, today)
	s.Require().NoError(s.svc.CancelBooking(s.ctx, first.ID, "alice"))
	s.mustCreate("alice", "A2", booking.SlotPM, tomorrow)
	s.mustCreate("bob", "B1", booking.SlotAM, today)

	s.Run("cancelled bookings stay in the history", func() {
		data := s.svc.LoadUserData(s.ctx, "alice")
		s.Equal(2, data.TotalBookings)
		s.Len(data.UserBookings, 2)
		s.Nil(data.TodayBooking, "today's only booking was cancelled")
		s.Len(s.svc.GetUserBookings(s.ctx, "alice"), 2)
		s.Nil(s.svc.TodayBooking(s.ctx, "alice"))
	})

	s.Run("today's active booking", func() {
		data := s.svc.LoadUserData(s.ctx, "bob")
		s.Equal(1, data.TotalBookings)
		s.Require().NotNil(data.TodayBooking)
		s.Equal(booking.SeatID("B1"), data.TodayBooking.SeatID)

		current := s.svc.TodayBooking(s.ctx, "bob")
		s.Require().NotNil(current)
		s.Equal(data.TodayBooking.ID, current.ID)
	})

	s.Run("unknown user", func() {
		data := s.svc.LoadUserData(s.ctx, "nobody")
		s.Zero(data.TotalBookings)
		s.Empty(data.UserBookings)
	})
}

func (s *BookingServiceTestSuite) TestStats() {
	a := s.mustCreate("alice", "A1", booking.SlotAM, today)
	s.mustCreate("bob", "B1", booking.SlotAM, today)
	s.mustCreate("carol", "C1", booking.SlotAM, tomorrow)
	s.Require().NoError(s.svc.CancelBooking(s.ctx, a.ID, "alice"))

	s.Equal(usecase.Stats{
		TotalBookings:     3,
		ActiveBookings:    2,
		TodayBookings:     1,
		CancelledBookings: 1,
	}, s.svc.Stats(s.ctx))
}

// ================================================================================
// Refresh, import and export
// ================================================================================

func (s *BookingServiceTestSuite) TestRefresh() {
	s.mustCreate("alice", "A1", booking.SlotAM, today)

	s.Run("picks up external writes", func() {
		other := s.newService(s.store, booking.NewTimestampIDGenerator())
		_, err := other.CreateBooking(s.ctx, usecase.CreateBookingParams{
			UserID: "bob", SeatID: "B1", TimeSlot: booking.SlotAM, Date: &today,
		})
		s.Require().NoError(err)

		_, seats := s.svc.GetReservedSeats(s.ctx, &today)
		s.Equal([]booking.SeatID{"A1"}, seats, "stale until refreshed")

		s.Require().NoError(s.svc.Refresh(s.ctx))

		_, seats = s.svc.GetReservedSeats(s.ctx, &today)
		s.ElementsMatch([]booking.SeatID{"A1", "B1"}, seats)
	})

	s.Run("read failure keeps the cache", func() {
		ctrl := gomock.NewController(s.T())
		store := usecasemock.NewMockBlobStore(ctrl)
		gomock.InOrder(
			store.EXPECT().Get(gomock.Any(), storeKey).Return(codec.Encode(s.persisted()), true, nil),
			store.EXPECT().Get(gomock.Any(), storeKey).Return("", false, errors.New("connection reset")),
		)
		svc := s.newService(store, booking.NewTimestampIDGenerator())
		svc.Initialize(s.ctx)

		err := svc.Refresh(s.ctx)

		s.True(errs.Is(err, usecase.ErrLoadFailed))
		s.Equal(2, svc.CacheInfo().RecordCount)
	})
}

func (s *BookingServiceTestSuite) TestImportBookings() {
	existing := s.mustCreate("alice", "A1", booking.SlotAM, today)

	incoming := []booking.Booking{
		*existing,
		builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = "BOOK_IMPORTED"
			b.UserID = "bob"
			b.SeatID = "B2"
			b.Date = today
		}).BuildDomain(),
	}
	// Imported copy of an existing id must not overwrite the cached record.
	incoming[0].Status = booking.StatusCancelled

	count, err := s.svc.ImportBookings(s.ctx, codec.Encode(incoming))
	s.Require().NoError(err)
	s.Equal(1, count)

	records := s.persisted()
	s.Require().Len(records, 2)
	s.Equal(booking.StatusActive, records[0].Status)
	s.Equal("BOOK_IMPORTED", records[1].ID)

	s.Run("re-import is a no-op", func() {
		count, err := s.svc.ImportBookings(s.ctx, codec.Encode(incoming))
		s.Require().NoError(err)
		s.Zero(count)
		s.Equal(2, s.svc.CacheInfo().RecordCount)
	})

	s.Run("first of duplicated ids wins", func() {
		a := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = "BOOK_TWICE"; b.UserID = "first" }).BuildDomain()
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = "BOOK_TWICE"; b.UserID = "second" }).BuildDomain()

		count, err := s.svc.ImportBookings(s.ctx, codec.Encode([]booking.Booking{a, b}))
		s.Require().NoError(err)
		s.Equal(1, count)
		s.Len(s.svc.GetUserBookings(s.ctx, "first"), 1)
		s.Empty(s.svc.GetUserBookings(s.ctx, "second"))
	})
}

func (s *BookingServiceTestSuite) TestExport() {
	s.Equal(codec.Encode(nil), s.svc.Export(s.ctx))

	b := s.mustCreate("alice", "A1", booking.SlotAM, today)

	records, _ := codec.Decode(s.svc.Export(s.ctx))
	s.Require().Len(records, 1)
	s.Equal(b.ID, records[0].ID)
}

// ================================================================================
// Persistence failures
// ================================================================================

func (s *BookingServiceTestSuite) TestPersistenceFailure() {
	ctrl := gomock.NewController(s.T())
	store := usecasemock.NewMockBlobStore(ctrl)
	svc := s.newService(store, booking.NewTimestampIDGenerator())

	store.EXPECT().Get(gomock.Any(), storeKey).Return("", false, nil).Times(1)
	store.EXPECT().Set(gomock.Any(), storeKey, gomock.Any()).Return(nil).Times(1)
	saved, err := svc.CreateBooking(s.ctx, usecase.CreateBookingParams{
		UserID: "alice", SeatID: "A1", TimeSlot: booking.SlotAM, Date: &today,
	})
	s.Require().NoError(err)

	writeErr := errors.New("quota exceeded")

	s.Run("create is rolled back", func() {
		store.EXPECT().Set(gomock.Any(), storeKey, gomock.Any()).Return(writeErr).Times(1)

		got, err := svc.CreateBooking(s.ctx, usecase.CreateBookingParams{
			UserID: "bob", SeatID: "B1", TimeSlot: booking.SlotAM, Date: &today,
		})

		s.Nil(got)
		s.True(errs.Is(err, usecase.ErrPersistenceFailed))
		s.False(usecase.IsRejection(err))
		s.Equal(1, svc.CacheInfo().RecordCount)
		s.Nil(svc.TodayBooking(s.ctx, "bob"))
	})

	s.Run("cancel is rolled back", func() {
		store.EXPECT().Set(gomock.Any(), storeKey, gomock.Any()).Return(writeErr).Times(1)

		err := svc.CancelBooking(s.ctx, saved.ID, "alice")

		s.True(errs.Is(err, usecase.ErrPersistenceFailed))
		current := svc.TodayBooking(s.ctx, "alice")
		s.Require().NotNil(current)
		s.True(current.IsActive())
	})

	s.Run("import is rolled back", func() {
		store.EXPECT().Set(gomock.Any(), storeKey, gomock.Any()).Return(writeErr).Times(1)
		incoming := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = "BOOK_NEW" }).BuildDomain()

		count, err := svc.ImportBookings(s.ctx, codec.Encode([]booking.Booking{incoming}))

		s.Zero(count)
		s.True(errs.Is(err, usecase.ErrPersistenceFailed))
		s.Equal(1, svc.CacheInfo().RecordCount)
	})
}

// ================================================================================
// End to end
// ================================================================================

func (s *BookingServiceTestSuite) TestBookingLifecycle() {
	date := booking.Date("2025-06-10")

	created, err := s.svc.CreateBooking(s.ctx, usecase.CreateBookingParams{
		UserID: "alice", SeatID: "C3", TimeSlot: booking.SlotFullDay, Date: &date,
	})
	s.Require().NoError(err)

	_, seats := s.svc.GetReservedSeats(s.ctx, &date)
	s.Contains(seats, booking.SeatID("C3"))
	s.Equal(1, s.svc.LoadUserData(s.ctx, "alice").TotalBookings)

	s.Require().NoError(s.svc.CancelBooking(s.ctx, created.ID, "alice"))

	_, seats = s.svc.GetReservedSeats(s.ctx, &date)
	s.NotContains(seats, booking.SeatID("C3"))
}
