//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"carhive/internal/domain/user"
	"carhive/internal/handler/api"
	resdto "carhive/internal/handler/dto/response"
	"carhive/internal/usecase/commands"
	"carhive/internal/usecase/queries"
	"carhive/tests/common/builder"
	"carhive/tests/common/httptest"
	"carhive/tests/common/testutil"
	commandsmock "carhive/tests/mock/commands"
	queriesmock "carhive/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	callerID   uuid.UUID
	callerRole user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.callerID = uuid.New()
	s.callerRole = user.RoleCustomer

	// Stands in for RequireAuth so handlers see an authenticated caller.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.callerID)
		c.Set("user_role", s.callerRole)
	})
	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings", s.handler.ListBookings)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildRequest()
	returnView := builder.NewBookingBuilder().WithCarID(reqBody.CarID).BuildReadModel()

	s.Run("creates a booking", func() {
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any(), s.callerID).
			Return(returnView, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody), "")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(returnView.ID, resp.ID)
		s.Equal(returnView.Amount, resp.Amount)
	})

	s.Run("rejects malformed body", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("car_id", "not-a-uuid")), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	commandErrors := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{"unknown car", commands.ErrCarNotFound, http.StatusNotFound, "Car not found"},
		{"invalid slot", commands.ErrInvalidTimeSlot, http.StatusUnprocessableEntity, "Invalid time slot"},
		{"slot taken", commands.ErrSlotConflict, http.StatusConflict, "conflicts"},
		{"payment declined", commands.ErrPaymentDeclined, http.StatusPaymentRequired, "declined"},
		{"domain validation", commands.ErrDomainValidation, http.StatusUnprocessableEntity, "validation"},
		{"storage failure", commands.ErrDatabaseOperationFailed, http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range commandErrors {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().
				CreateBooking(gomock.Any(), gomock.Any(), s.callerID).
				Return(nil, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody), "")
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectMsg)
		})
	}
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	returnView := builder.NewBookingBuilder().WithUserID(s.callerID).BuildReadModel()

	s.Run("returns own booking", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), returnView.ID, s.callerID, user.RoleCustomer).
			Return(returnView, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+returnView.ID.String(), nil, "")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(returnView.ID, resp.ID)
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("missing booking reads as not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id, s.callerID, user.RoleCustomer).
			Return(nil, queries.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("foreign booking reads as not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id, s.callerID, user.RoleCustomer).
			Return(nil, queries.ErrBookingAccess)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("lists caller bookings", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().WithUserID(s.callerID).BuildReadModel(),
			builder.NewBookingBuilder().WithUserID(s.callerID).WithDriver().BuildReadModel(),
		}
		s.mockQueries.EXPECT().
			ListForCaller(gomock.Any(), s.callerID, user.RoleCustomer).
			Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var resp []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
	})

	s.Run("empty list stays a list", func() {
		s.mockQueries.EXPECT().
			ListForCaller(gomock.Any(), s.callerID, user.RoleCustomer).
			Return([]*queries.BookingView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var resp []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.NotNil(resp)
		s.Empty(resp)
	})
}
