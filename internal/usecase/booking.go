package usecase

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/domain/layout"
	"seat-reservation/internal/infra/codec"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/errs"
)

// Rejections: expected outcomes the caller shows to the user as-is.
var (
	ErrDuplicateDay     = errors.New("you already have a booking for this date; only one booking per day is allowed")
	ErrSeatConflict     = errors.New("this seat is already booked for the selected time slot")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingNotActive = errors.New("booking is already cancelled")
	ErrUnknownSeat      = errors.New("seat does not exist in the seating layout")
	ErrInvalidBooking   = errors.New("invalid booking request")
)

// Error markers for categorization
var (
	ErrPersistenceFailed = errors.New("database auto-save failed")
	ErrLoadFailed        = errors.New("failed to load booking database")
)

var rejections = []error{
	ErrDuplicateDay,
	ErrSeatConflict,
	ErrBookingNotFound,
	ErrBookingNotActive,
	ErrUnknownSeat,
	ErrInvalidBooking,
}

// AsRejection returns the rejection sentinel carried by err, if any. Its
// message is the reason shown to the user.
func AsRejection(err error) (error, bool) {
	for _, target := range rejections {
		if errs.Is(err, target) {
			return target, true
		}
	}
	return nil, false
}

func IsRejection(err error) bool {
	_, ok := AsRejection(err)
	return ok
}

// BookingService owns the in-memory record cache. The cache is loaded once
// from the blob store and written back in full after every mutation.
// Calls are serialized, so every check-then-write sequence is atomic with
// respect to other callers of the same instance.
type BookingService struct {
	mu sync.Mutex

	store    BlobStore
	key      string
	factory  *booking.Factory
	layout   *layout.Layout
	clock    clock.Clock
	location *time.Location
	logger   *slog.Logger

	records     []booking.Booking
	initialized bool
	dropped     int
}

type BookingServiceOptions struct {
	Store    BlobStore
	Key      string
	Factory  *booking.Factory
	Layout   *layout.Layout // nil disables the seat membership check
	Clock    clock.Clock
	Location *time.Location
	Logger   *slog.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &BookingService{
		store:    opts.Store,
		key:      opts.Key,
		factory:  opts.Factory,
		layout:   opts.Layout,
		clock:    opts.Clock,
		location: loc,
		logger:   logger,
		records:  make([]booking.Booking, 0),
	}
}

// Initialize loads the persisted table once. A missing or unreadable table
// leaves the service usable with an empty cache.
func (s *BookingService) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInitialized(ctx)
}

func (s *BookingService) ensureInitialized(ctx context.Context) {
	if s.initialized {
		return
	}

	s.logger.Info("Initializing booking database", "key", s.key)
	records, stats, err := s.load(ctx)
	if err != nil {
		s.logger.Error("Booking database could not be loaded, starting empty",
			"error", err,
			"stack", errs.ExtractStackLines(err, 8))
		records, stats = make([]booking.Booking, 0), codec.DecodeStats{}
	}

	s.records = records
	s.dropped = stats.Dropped
	s.initialized = true
	s.logger.Info("Booking database initialized", "records", len(records), "dropped_rows", stats.Dropped)
}

func (s *BookingService) load(ctx context.Context) ([]booking.Booking, codec.DecodeStats, error) {
	text, found, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, codec.DecodeStats{}, errs.Mark(errs.Wrap(err, "read booking table"), ErrLoadFailed)
	}
	if !found {
		s.logger.Info("No existing booking table found, creating new one", "key", s.key)
		return make([]booking.Booking, 0), codec.DecodeStats{}, nil
	}

	records, stats := codec.Decode(text)
	if stats.Dropped > 0 {
		s.logger.Warn("Dropped malformed booking rows", "rows", stats.Rows, "dropped", stats.Dropped)
	}
	return records, stats, nil
}

// persist writes the given snapshot. Callers swap it into the cache only on success.
func (s *BookingService) persist(ctx context.Context, records []booking.Booking) error {
	if err := s.store.Set(ctx, s.key, codec.Encode(records)); err != nil {
		s.logger.Error("Auto-save failed", "records", len(records), "error", err)
		return errs.Mark(errs.Wrap(err, "auto-save booking table"), ErrPersistenceFailed)
	}
	s.logger.Debug("Auto-saved booking table", "records", len(records))
	return nil
}

func (s *BookingService) today() booking.Date {
	return booking.DateIn(s.clock.Now(), s.location)
}

func (s *BookingService) dateOrToday(date *booking.Date) booking.Date {
	if date == nil || *date == "" {
		return s.today()
	}
	return *date
}

func (s *BookingService) hasID(id string) bool {
	return slices.ContainsFunc(s.records, func(b booking.Booking) bool { return b.ID == id })
}

// CreateBooking checks, in order: one active booking per user per day, then
// seat/slot collisions, then layout membership. The first failing check
// decides the rejection.
func (s *BookingService) CreateBooking(ctx context.Context, params CreateBookingParams) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInitialized(ctx)

	date := s.dateOrToday(params.Date)

	if booking.HasActiveBookingFor(s.records, params.UserID, date) {
		return nil, ErrDuplicateDay
	}
	if _, conflict := booking.SeatConflict(s.records, params.SeatID, date, params.TimeSlot); conflict {
		return nil, ErrSeatConflict
	}
	if s.layout != nil && !s.layout.Contains(params.SeatID) {
		return nil, ErrUnknownSeat
	}

	created, err := s.factory.CreateBooking(params.UserID, params.SeatID, params.TimeSlot, date, params.Details)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}
	for s.hasID(created.ID) {
		created.ID = s.factory.IDs.NewID(s.clock.Now())
	}

	next := append(slices.Clip(s.records), *created)
	if err := s.persist(ctx, next); err != nil {
		return nil, err
	}
	s.records = next

	s.logger.Info("Booking created",
		"booking_id", created.ID,
		"user_id", created.UserID,
		"seat_id", created.SeatID,
		"time_slot", created.TimeSlot,
		"date", created.Date)
	return created, nil
}

// CancelBooking only finds bookings owned by userID; anyone else gets not-found.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInitialized(ctx)

	idx := slices.IndexFunc(s.records, func(b booking.Booking) bool {
		return b.ID == bookingID && b.UserID == userID
	})
	if idx < 0 {
		return ErrBookingNotFound
	}

	updated := s.records[idx]
	if err := updated.Cancel(userID, s.clock.Now()); err != nil {
		return errs.Mark(err, ErrBookingNotActive)
	}

	next := slices.Clone(s.records)
	next[idx] = updated
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.records = next

	s.logger.Info("Booking cancelled", "booking_id", bookingID, "user_id", userID)
	return nil
}

func (s *BookingService) GetReservedSeats(ctx context.Context, date *booking.Date) (booking.Date, []booking.SeatID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInitialized(ctx)

	d := s.dateOrToday(date)
	return d, booking.ReservedSeatIDsOn(s.records, d)
}

// LoadUserData returns the user's full history, cancelled records included.
// Only the "today" slot is restricted to active bookings.
func (s *BookingService) LoadUserData(ctx context.Context, userID string) UserData {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInitialized(ctx)

	userBookings := booking.ForUser(s.records, userID)
	data := UserData{
		UserBookings:  userBookings,
		TotalBookings: len(userBookings),
	}
	if b, ok := booking.ActiveBookingFor(s.records, userID, s.today()); ok {
		data.TodayBooking = &b
	}

	s.logger.Debug("Loaded user data", "user_id", userID, "bookings", data.TotalBookings)
	return data
}

func (s *BookingService) GetUserBookings(ctx context.Context, userID string) []booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInitialized(ctx)

	return booking.ForUser(s.records, userID)
}

func (s *BookingService) TodayBooking(ctx context.Context, userID string) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInitialized(ctx)

	b, ok := booking.ActiveBookingFor(s.records, userID, s.today())
	if !ok {
		return nil
	}
	return &b
}

// Refresh replaces the cache with what is currently persisted. On a read
// failure the current cache is kept and the error returned.
func (s *BookingService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, stats, err := s.load(ctx)
	if err != nil {
		return err
	}
	s.records = records
	s.dropped = stats.Dropped
	s.initialized = true

	s.logger.Info("Cache refreshed from booking database", "records", len(records))
	return nil
}

// ImportBookings merges decoded records whose id is not cached yet. Existing
// records always win, and so does the first of several imported rows sharing an id.
func (s *BookingService) ImportBookings(ctx context.Context, text string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInitialized(ctx)

	decoded, stats := codec.Decode(text)
	if stats.Dropped > 0 {
		s.logger.Warn("Dropped malformed rows from import", "rows", stats.Rows, "dropped", stats.Dropped)
	}

	seen := make(map[string]struct{}, len(s.records)+len(decoded))
	for _, b := range s.records {
		seen[b.ID] = struct{}{}
	}
	fresh := make([]booking.Booking, 0, len(decoded))
	for _, b := range decoded {
		if _, dup := seen[b.ID]; dup {
			continue
		}
		seen[b.ID] = struct{}{}
		fresh = append(fresh, b)
	}

	next := append(slices.Clip(s.records), fresh...)
	if err := s.persist(ctx, next); err != nil {
		return 0, err
	}
	s.records = next

	s.logger.Info("Imported bookings", "imported", len(fresh), "skipped", len(decoded)-len(fresh))
	return len(fresh), nil
}

func (s *BookingService) Export(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInitialized(ctx)

	return codec.Encode(s.records)
}

func (s *BookingService) Stats(ctx context.Context) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureInitialized(ctx)

	today := s.today()
	stats := Stats{TotalBookings: len(s.records)}
	for _, b := range s.records {
		switch b.Status {
		case booking.StatusActive:
			stats.ActiveBookings++
			if b.Date == today {
				stats.TodayBookings++
			}
		case booking.StatusCancelled:
			stats.CancelledBookings++
		}
	}
	return stats
}

// CacheInfo reports cache state without triggering a load.
func (s *BookingService) CacheInfo() CacheInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	return CacheInfo{
		Initialized:   s.initialized,
		RecordCount:   len(s.records),
		DroppedOnLoad: s.dropped,
	}
}
