package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pourup/internal/domain/booking"
	"pourup/internal/handler/dto/request"
	resdto "pourup/internal/handler/dto/response"
	"pourup/internal/handler/httperr"
	"pourup/internal/handler/middleware"
	"pourup/internal/pkg/errs"
	"pourup/internal/usecase/commands"
	"pourup/internal/usecase/queries"
)

var errUnauthenticated = errs.New("user not authenticated")

// BookingHandler serves the manager-facing booking endpoints.
type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary List bookings
// @Description List bookings across the manager's assigned outlets
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param outlet_id query string false "Filter by outlet"
// @Param date_from query string false "Earliest booking date (YYYY-MM-DD)"
// @Param date_to query string false "Latest booking date (YYYY-MM-DD)"
// @Success 200 {array} response.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	managerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "User not authenticated", nil)
		return
	}

	var q request.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", err.Error())
		return
	}

	if q.Status != nil {
		if _, err := booking.NewStatus(*q.Status); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", *q.Status)
			return
		}
	}

	from, to, err := q.ParseDateRange()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}

	filter := queries.BookingFilter{
		Status:   q.Status,
		OutletID: q.OutletID,
		DateFrom: from,
		DateTo:   to,
	}

	items, err := h.bookingQueries.ListForManager(c.Request.Context(), managerID, filter)
	if err != nil {
		if errors.Is(err, queries.ErrOutletForbidden) {
			httperr.AbortWithError(c, http.StatusForbidden, err, "No access to this outlet", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}

	responses := make([]*resdto.BookingListResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, resdto.FromBookingListItem(item))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get booking
// @Description Get a booking in one of the manager's assigned outlets
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	managerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "User not authenticated", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", c.Param("id"))
		return
	}

	view, err := h.bookingQueries.GetForManager(c.Request.Context(), managerID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, queries.ErrOutletForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "No access to this booking", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get booking", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking status
// @Description Transition a booking to a new status
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body request.UpdateBookingStatusRequest true "Status update"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/status [put]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "User not authenticated", nil)
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "User not authenticated", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", c.Param("id"))
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", err.Error())
		return
	}

	view, err := h.bookingCommands.UpdateStatus(c.Request.Context(), bookingID, actorID, role, req.Status, req.TrimmedNotes())
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidStatus),
			errors.Is(err, booking.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, booking.ErrUnauthorizedTransition):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not authorized for this transition", nil)
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrStaleStatus):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking was modified concurrently, retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update booking status", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
