package api

import (
	"net/http"

	"seat-reservation/internal/domain/layout"
	resdto "seat-reservation/internal/handler/dto/response"
	"seat-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LayoutHandler struct {
	layout         *layout.Layout
	bookingUseCase usecase.BookingUseCase
}

func NewLayoutHandler(l *layout.Layout, bookingUseCase usecase.BookingUseCase) *LayoutHandler {
	return &LayoutHandler{layout: l, bookingUseCase: bookingUseCase}
}

// @Summary Seating layout
// @Description Tables grouped into rows, with per-seat availability for a date (default today)
// @Tags layout
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.LayoutResponse
// @Failure 400 {object} httperr.Response
// @Router /api/layout [get]
func (h *LayoutHandler) GetLayout(c *gin.Context) {
	date, ok := bindDateQuery(c)
	if !ok {
		return
	}

	resolved, reserved := h.bookingUseCase.GetReservedSeats(c.Request.Context(), date)
	c.JSON(http.StatusOK, resdto.FromLayout(h.layout, resolved, reserved))
}
