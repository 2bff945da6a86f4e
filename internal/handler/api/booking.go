package api

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"seat-reservation/internal/domain/booking"
	reqdto "seat-reservation/internal/handler/dto/request"
	resdto "seat-reservation/internal/handler/dto/response"
	"seat-reservation/internal/handler/httperr"
	"seat-reservation/internal/handler/middleware"
	"seat-reservation/internal/pkg/errs"
	"seat-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
)

// maxImportBytes caps the raw table accepted by the import endpoint.
const maxImportBytes = 8 << 20

var errMissingUser = errs.New("user id missing from context")

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create booking
// @Description Book a seat for a date and time slot. One active booking per user per day.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller identifier (min 3 chars)"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "User ID is required", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams(userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", err.Error())
		return
	}

	created, err := h.bookingUseCase.CreateBooking(c.Request.Context(), params)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(*created))
}

// @Summary Cancel booking
// @Description Cancel one of the caller's active bookings
// @Tags bookings
// @Param X-User-ID header string true "Caller identifier (min 3 chars)"
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "User ID is required", nil)
		return
	}

	if err := h.bookingUseCase.CancelBooking(c.Request.Context(), c.Param("id"), userID); err != nil {
		abortWithBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Reserved seats
// @Description List seats holding an active booking on a date (default today)
// @Tags bookings
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.ReservedSeatsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings/reserved [get]
func (h *BookingHandler) GetReservedSeats(c *gin.Context) {
	date, ok := bindDateQuery(c)
	if !ok {
		return
	}

	resolved, seats := h.bookingUseCase.GetReservedSeats(c.Request.Context(), date)
	c.JSON(http.StatusOK, resdto.FromReservedSeats(resolved, seats))
}

// @Summary My data
// @Description The caller's bookings, today's active booking and total count
// @Tags bookings
// @Produce json
// @Param X-User-ID header string true "Caller identifier (min 3 chars)"
// @Success 200 {object} resdto.UserDataResponse
// @Failure 401 {object} httperr.Response
// @Router /api/me [get]
func (h *BookingHandler) GetUserData(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "User ID is required", nil)
		return
	}

	data := h.bookingUseCase.LoadUserData(c.Request.Context(), userID)
	c.JSON(http.StatusOK, resdto.FromUserData(data))
}

// @Summary My bookings
// @Description Every booking made by the caller, any status
// @Tags bookings
// @Produce json
// @Param X-User-ID header string true "Caller identifier (min 3 chars)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /api/me/bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "User ID is required", nil)
		return
	}

	bookings := h.bookingUseCase.GetUserBookings(c.Request.Context(), userID)
	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}

// @Summary Booking statistics
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Router /api/bookings/stats [get]
func (h *BookingHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromStats(h.bookingUseCase.Stats(c.Request.Context())))
}

// @Summary Cache state
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.CacheInfoResponse
// @Router /api/bookings/cache [get]
func (h *BookingHandler) GetCacheInfo(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCacheInfo(h.bookingUseCase.CacheInfo()))
}

// @Summary Reload bookings
// @Description Re-read the booking table from the store, replacing the cache
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.CacheInfoResponse
// @Failure 503 {object} httperr.Response
// @Router /api/bookings/refresh [post]
func (h *BookingHandler) Refresh(c *gin.Context) {
	if err := h.bookingUseCase.Refresh(c.Request.Context()); err != nil {
		slog.Error("Booking refresh failed", "error", err, "request_id", middleware.GetRequestID(c))
		httperr.AbortWithCode(c, http.StatusServiceUnavailable, "REFRESH_FAILED", err, "Failed to refresh bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCacheInfo(h.bookingUseCase.CacheInfo()))
}

// @Summary Import bookings
// @Description Merge a raw booking table into the cache. Existing ids are kept.
// @Tags bookings
// @Accept plain
// @Produce json
// @Param table body string true "Booking table text"
// @Success 200 {object} resdto.ImportResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings/import [post]
func (h *BookingHandler) ImportBookings(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes+1))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read request body", nil)
		return
	}
	if len(raw) > maxImportBytes {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, errs.New("import body too large"), "Import body too large", nil)
		return
	}

	imported, err := h.bookingUseCase.ImportBookings(c.Request.Context(), string(raw))
	if err != nil {
		abortWithBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ImportResponse{Imported: imported})
}

// @Summary Export bookings
// @Description The full booking table in its persisted text form
// @Tags bookings
// @Produce plain
// @Success 200 {string} string
// @Router /api/bookings/export [get]
func (h *BookingHandler) ExportBookings(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="bookings.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(h.bookingUseCase.Export(c.Request.Context())))
}

// bindDateQuery parses the optional date query parameter. It writes the
// error response itself and reports false when the value is malformed.
func bindDateQuery(c *gin.Context) (*booking.Date, bool) {
	raw := strings.TrimSpace(c.Query("date"))
	date, err := reqdto.ParseOptionalDate(&raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", "date must be YYYY-MM-DD")
		return nil, false
	}
	return date, true
}

func abortWithBookingError(c *gin.Context, err error) {
	if rejection, ok := usecase.AsRejection(err); ok {
		status, code := rejectionStatus(rejection)
		httperr.AbortWithCode(c, status, code, err, rejection.Error(), nil)
		return
	}

	if errs.Is(err, usecase.ErrPersistenceFailed) {
		slog.Error("Booking change not saved",
			"error", err,
			"request_id", middleware.GetRequestID(c),
			"stack", errs.ExtractStackLines(err, 8))
		httperr.AbortWithCode(c, http.StatusServiceUnavailable, "PERSISTENCE_FAILED", err, "Failed to save booking database", nil)
		return
	}

	slog.Error("Unexpected booking error", "error", err, "request_id", middleware.GetRequestID(c))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func rejectionStatus(rejection error) (int, string) {
	switch rejection {
	case usecase.ErrBookingNotFound:
		return http.StatusNotFound, "BOOKING_NOT_FOUND"
	case usecase.ErrUnknownSeat:
		return http.StatusBadRequest, "UNKNOWN_SEAT"
	case usecase.ErrInvalidBooking:
		return http.StatusBadRequest, "INVALID_BOOKING"
	case usecase.ErrDuplicateDay:
		return http.StatusConflict, "DUPLICATE_DAY"
	case usecase.ErrSeatConflict:
		return http.StatusConflict, "SEAT_CONFLICT"
	case usecase.ErrBookingNotActive:
		return http.StatusConflict, "BOOKING_NOT_ACTIVE"
	default:
		return http.StatusConflict, "BOOKING_REJECTED"
	}
}
