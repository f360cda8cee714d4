package api

import (
	"net/http"

	"restaurant-booking/internal/domain/booking"
	reqdto "restaurant-booking/internal/handler/dto/request"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AllocationHandler struct {
	q queries.AllocationQueries
}

func NewAllocationHandler(q queries.AllocationQueries) *AllocationHandler {
	return &AllocationHandler{q: q}
}

// @Summary Bookings and availability
// @Description Bookings inside the tolerance window around at, and the tables they leave free
// @Tags allocation
// @Produce json
// @Security BearerAuth
// @Param at query string true "Reference instant (RFC 3339 or local date-time)"
// @Param tolerance query int false "Tolerance in minutes"
// @Param restaurantId query string false "Restaurant ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /allocation/availability [get]
func (h *AllocationHandler) Availability(c *gin.Context) {
	h.availability(c, booking.WindowModeDirect)
}

// @Summary Bookings and availability (offset-adjusted)
// @Description Same as availability with the legacy offset subtracted from the reference instant
// @Tags allocation
// @Produce json
// @Security BearerAuth
// @Param at query string true "Reference instant (RFC 3339 or local date-time)"
// @Param tolerance query int false "Tolerance in minutes"
// @Param restaurantId query string false "Restaurant ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /allocation/availability/legacy [get]
func (h *AllocationHandler) LegacyAvailability(c *gin.Context) {
	h.availability(c, booking.WindowModeOffsetAdjusted)
}

func (h *AllocationHandler) availability(c *gin.Context, mode booking.WindowMode) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	view, err := h.q.BookingsAndAvailability(c.Request.Context(), q.ToQuery(mode))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Closest booking per table
// @Description For each reserved table, the booking nearest to now
// @Tags allocation
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookedTableResponse
// @Router /allocation/booked-tables [get]
func (h *AllocationHandler) BookedTables(c *gin.Context) {
	views, err := h.q.ClosestBookingPerTable(c.Request.Context())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookedTableViews(views))
}

// @Summary Daily utilization stats
// @Description Table utilization for one local day plus all-time aggregates
// @Tags allocation
// @Produce json
// @Security BearerAuth
// @Param date query string false "Local date YYYY-MM-DD, defaults to today"
// @Success 200 {object} resdto.DailyStatsResponse
// @Failure 400 {object} httperr.Response
// @Router /allocation/stats [get]
func (h *AllocationHandler) Stats(c *gin.Context) {
	var q reqdto.StatsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	stats, err := h.q.DailyUtilizationStats(c.Request.Context(), q.Date)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	resp, err := resdto.FromDailyStatsView(stats)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
