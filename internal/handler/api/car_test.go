//go:build unit

package api_test

import (
	"net/http"
	"testing"

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

type CarHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCarCommands
	mockQueries  *queriesmock.MockCarQueries
	handler      *api.CarHandler
}

func (s *CarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCarCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCarQueries(s.mockCtrl)
	s.handler = api.NewCarHandler(s.mockCommands, s.mockQueries)

	// Admin gating lives in middleware; handlers are tested bare.
	s.router.GET("/cars", s.handler.ListCars)
	s.router.GET("/cars/:id", s.handler.GetCar)
	s.router.POST("/cars", s.handler.CreateCar)
	s.router.PUT("/cars/:id", s.handler.UpdateCar)
	s.router.DELETE("/cars/:id", s.handler.DeleteCar)
}

func (s *CarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CarHandlerTestSuite))
}

func (s *CarHandlerTestSuite) TestListCars() {
	s.Run("lists the fleet", func() {
		views := []*queries.CarView{
			builder.NewCarBuilder().BuildReadModel(),
			builder.NewCarBuilder().WithName("Honda Civic").BuildReadModel(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars", nil, "")

		var resp []*resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
		s.Equal("Honda Civic", resp[1].Name)
	})
}

func (s *CarHandlerTestSuite) TestGetCar() {
	returnView := builder.NewCarBuilder().BuildReadModel()

	s.Run("returns a car with its booked slots", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/"+returnView.ID.String(), nil, "")

		var resp resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(returnView.ID, resp.ID)
		s.Equal(returnView.RentPerHour, resp.RentPerHour)
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid car ID")
	})

	s.Run("unknown car", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrCarNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Car not found")
	})
}

func (s *CarHandlerTestSuite) TestCreateCar() {
	url := "/cars"
	reqBody := builder.NewCarBuilder().BuildRequest()
	returnView := builder.NewCarBuilder().BuildReadModel()

	s.Run("creates a car", func() {
		s.mockCommands.EXPECT().CreateCar(gomock.Any(), gomock.Any()).Return(returnView, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody), "")

		var resp resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(returnView.Name, resp.Name)
	})

	s.Run("missing required fields", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("name", "")), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("domain rejects the car", func() {
		s.mockCommands.EXPECT().CreateCar(gomock.Any(), gomock.Any()).Return(nil, commands.ErrDomainValidation)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Invalid car data")
	})
}

func (s *CarHandlerTestSuite) TestUpdateCar() {
	reqBody := builder.NewCarBuilder().WithName("Updated Name").BuildRequest()
	returnView := builder.NewCarBuilder().WithName("Updated Name").BuildReadModel()
	url := "/cars/" + returnView.ID.String()

	s.Run("updates a car", func() {
		s.mockCommands.EXPECT().UpdateCar(gomock.Any(), returnView.ID, gomock.Any()).Return(returnView, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, testutil.DtoMap(s.T(), reqBody), "")

		var resp resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("Updated Name", resp.Name)
	})

	s.Run("unknown car", func() {
		s.mockCommands.EXPECT().UpdateCar(gomock.Any(), returnView.ID, gomock.Any()).Return(nil, commands.ErrCarNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, testutil.DtoMap(s.T(), reqBody), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Car not found")
	})
}

func (s *CarHandlerTestSuite) TestDeleteCar() {
	id := uuid.New()
	url := "/cars/" + id.String()

	s.Run("deletes a car", func() {
		s.mockCommands.EXPECT().DeleteCar(gomock.Any(), id).Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("unknown car", func() {
		s.mockCommands.EXPECT().DeleteCar(gomock.Any(), id).Return(commands.ErrCarNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Car not found")
	})
}
