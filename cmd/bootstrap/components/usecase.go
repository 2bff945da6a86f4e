package components

import (
	"context"
	"log/slog"

	"seat-reservation/internal/domain/booking"
	"seat-reservation/internal/domain/layout"
	"seat-reservation/internal/pkg/clock"
	"seat-reservation/internal/pkg/config"
	"seat-reservation/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseBookingModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewTimestampIDGenerator,
		fx.As(new(booking.IDGenerator)),
	),
	booking.NewFactory,
	NewLayout,
)

var usecaseBookingModule = fx.Module("usecase/booking",
	fx.Provide(
		fx.Annotate(
			NewBookingService,
			fx.As(new(usecase.BookingUseCase)),
		),
	),
	fx.Invoke(warmBookingCache),
)

func NewLayout(cfg config.Config) (*layout.Layout, error) {
	return layout.NewLayout(cfg.Layout.TableLetters, cfg.Layout.SeatsPerTable, cfg.Layout.TablesPerRow)
}

func NewBookingService(
	cfg config.Config,
	store usecase.BlobStore,
	factory *booking.Factory,
	l *layout.Layout,
	clk clock.Clock,
	logger *slog.Logger,
) (*usecase.BookingService, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}

	return usecase.NewBookingService(usecase.BookingServiceOptions{
		Store:    store,
		Key:      cfg.Store.Key,
		Factory:  factory,
		Layout:   l,
		Clock:    clk,
		Location: loc,
		Logger:   logger.With("component", "booking"),
	}), nil
}

// warmBookingCache loads the booking table before the server accepts requests.
func warmBookingCache(lc fx.Lifecycle, svc usecase.BookingUseCase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			svc.Initialize(ctx)
			return nil
		},
	})
}
