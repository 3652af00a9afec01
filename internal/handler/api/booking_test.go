//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"pourup/internal/domain/booking"
	"pourup/internal/domain/user"
	"pourup/internal/handler/api"
	resdto "pourup/internal/handler/dto/response"
	"pourup/internal/usecase/commands"
	"pourup/internal/usecase/queries"
	"pourup/tests/common/builder"
	"pourup/tests/common/httptest"
	commandsmock "pourup/tests/mock/commands"
	queriesmock "pourup/tests/mock/queries"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	managerID    uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.managerID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.managerID)
		c.Set("user_role", user.RoleOutletManager)
		c.Next()
	}

	s.router.GET("/bookings", authMiddleware, s.handler.List)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.PUT("/bookings/:id/status", authMiddleware, s.handler.UpdateStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: returns bookings across assigned outlets", func() {
		items := []*queries.BookingListItem{
			builder.NewBookingBuilder().BuildListItem(),
			builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildListItem(),
		}
		s.mockQueries.EXPECT().ListForManager(gomock.Any(), s.managerID, gomock.Any()).
			Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("forbidden outlet filter returns 403", func() {
		s.mockQueries.EXPECT().ListForManager(gomock.Any(), s.managerID, gomock.Any()).
			Return(nil, queries.ErrOutletForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?outlet_id="+uuid.NewString(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "No access")
	})

	s.Run("invalid status filter returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?status=archived", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})

	s.Run("invalid date filter returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?date_from=03-07-2026", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})

	s.Run("unauthenticated returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetForManager(gomock.Any(), s.managerID, view.ID).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+view.ID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ConfirmationCode, body.ConfirmationCode)
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().GetForManager(gomock.Any(), s.managerID, view.ID).
			Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("foreign outlet", func() {
		s.mockQueries.EXPECT().GetForManager(gomock.Any(), s.managerID, view.ID).
			Return(nil, queries.ErrOutletForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "No access")
	})

	s.Run("malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	view := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildView()
	url := "/bookings/" + view.ID.String() + "/status"
	reqBody := map[string]any{"status": "confirmed"}

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, s.managerID, user.RoleOutletManager, "confirmed", gomock.Any()).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{"invalid transition", booking.ErrInvalidTransition, http.StatusBadRequest},
		{"unknown status", booking.ErrInvalidStatus, http.StatusBadRequest},
		{"unauthorized actor", booking.ErrUnauthorizedTransition, http.StatusForbidden},
		{"missing booking", commands.ErrBookingNotFound, http.StatusNotFound},
		{"stale status", commands.ErrStaleStatus, http.StatusConflict},
		{"storage failure", commands.ErrDatabaseOperationFailed, http.StatusInternalServerError},
	}
	for _, tc := range errorCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), view.ID, s.managerID, user.RoleOutletManager, "confirmed", gomock.Any()).
				Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
			s.Equal(tc.expectCode, rec.Code)
		})
	}

	s.Run("missing status field returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
