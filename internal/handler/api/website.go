package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pourup/internal/domain/booking"
	"pourup/internal/domain/schedule"
	"pourup/internal/handler/dto/request"
	resdto "pourup/internal/handler/dto/response"
	"pourup/internal/handler/httperr"
	"pourup/internal/handler/middleware"
	"pourup/internal/usecase/commands"
	"pourup/internal/usecase/queries"
)

// WebsiteBookingHandler serves the customer-facing booking endpoints.
type WebsiteBookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewWebsiteBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *WebsiteBookingHandler {
	return &WebsiteBookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a new booking for the authenticated customer
// @Tags website
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateBookingRequest true "Booking request"
// @Success 201 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /website/bookings [post]
func (h *WebsiteBookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "User not authenticated", nil)
		return
	}

	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", err.Error())
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List the authenticated customer's bookings, newest first
// @Tags website
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} response.BookingListResponse
// @Router /website/bookings [get]
func (h *WebsiteBookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "User not authenticated", nil)
		return
	}

	var status *string
	if s := c.Query("status"); s != "" {
		if _, err := booking.NewStatus(s); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter", s)
			return
		}
		status = &s
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID, status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}

	responses := make([]*resdto.BookingListResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, resdto.FromBookingListItem(item))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Cancel own booking
// @Description Cancel one of the authenticated customer's bookings
// @Tags website
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /website/bookings/{id}/cancel [put]
func (h *WebsiteBookingHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
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

	view, err := h.bookingCommands.Cancel(c.Request.Context(), bookingID, userID, role)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *WebsiteBookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrInvalidPartySize),
		errors.Is(err, booking.ErrOutletClosed),
		errors.Is(err, booking.ErrOutsideOperatingHours),
		errors.Is(err, booking.ErrNoAvailableSlot),
		errors.Is(err, schedule.ErrInvalidTimeOfDay):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, commands.ErrCannotCancel),
		errors.Is(err, booking.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, commands.ErrExperienceNotFound),
		errors.Is(err, commands.ErrOutletNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrStaleStatus):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking was modified concurrently, retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to process booking", nil)
	}
}
