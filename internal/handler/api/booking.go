package api

import (
	"net/http"

	reqdto "restaurant-booking/internal/handler/dto/request"
	resdto "restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Create a booking for a customer or a guest
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	b, err := h.cmds.CreateBooking(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+b.ID().String())
	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}

// @Summary Get booking
// @Description Get a booking with its reservation tables
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description All bookings, optionally filtered by restaurant, customer or held table
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param restaurantId query string false "Restaurant ID"
// @Param customerId query string false "Customer ID"
// @Param tableId query string false "Table ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var q reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	h.list(c, q.ToFilter())
}

// @Summary Bookings holding a table
// @Description Bookings whose reservation references the table
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Table ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /tables/{id}/bookings [get]
func (h *BookingHandler) ListByTable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid table ID format", nil)
		return
	}
	h.list(c, queries.BookingListFilter{TableID: &id})
}

// @Summary Bookings of a customer
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /customers/{id}/bookings [get]
func (h *BookingHandler) ListByCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer ID format", nil)
		return
	}
	h.list(c, queries.BookingListFilter{CustomerID: &id})
}

func (h *BookingHandler) list(c *gin.Context, filter queries.BookingListFilter) {
	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Patch booking
// @Description Update whitelisted booking fields
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.PatchBookingRequest true "Patch booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Patch(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req reqdto.PatchBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	b, err := h.cmds.PatchFields(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Assign tables
// @Description Replace the booking reservation with a validated table list
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AssignTablesRequest true "Assign tables request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/reservation [put]
func (h *BookingHandler) AssignTables(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req reqdto.AssignTablesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	b, err := h.cmds.AssignTables(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Set reservation status
// @Description Change the status of an existing reservation
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.SetReservationStatusRequest true "Reservation status request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/reservation/status [patch]
func (h *BookingHandler) SetReservationStatus(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req reqdto.SetReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	b, err := h.cmds.SetReservationStatus(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

func bookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
