//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"carhive/internal/handler/api"
	reqdto "carhive/internal/handler/dto/request"
	resdto "carhive/internal/handler/dto/response"
	"carhive/internal/pkg/config"
	"carhive/internal/pkg/jwt"
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

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	jwtService := jwt.NewService("test-secret-key-for-tests-only", time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.NewTestConfig().Cookie)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func loginBody() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    "customer@example.com",
		Password: "password123",
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("logs in and sets the access token cookie", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(&commands.LoginResult{User: returnUser, AccessToken: "test-jwt-token"}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), loginBody()), "")

		var resp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("test-jwt-token", resp.AccessToken)
		s.Equal(returnUser.Email, resp.User.Email)

		cookie := httptest.ExtractCookie(w, "access_token")
		s.Require().NotNil(cookie)
		s.Equal("test-jwt-token", cookie.Value)
	})

	s.Run("rejects short passwords before the use case", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), loginBody(), testutil.Field("password", "short")), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("wrong credentials", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), loginBody()), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("unknown user reads the same as wrong password", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), loginBody()), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := reqdto.RegisterRequest{
		Username: "newuser",
		Email:    "newuser@example.com",
		Password: "password123",
	}
	returnUser := builder.NewUserBuilder().WithUsername("newuser").WithEmail("newuser@example.com").BuildReadModel()

	s.Run("registers a customer", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(returnUser, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody), "")

		var resp resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal("newuser@example.com", resp.User.Email)
		s.Equal("customer", resp.User.Role)
	})

	s.Run("duplicate email", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrEmailAlreadyTaken)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Email already taken")
	})

	s.Run("invalid email format", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("email", "not-an-email")), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("clears the cookie", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusNoContent, w.Code)

		cookie := httptest.ExtractCookie(w, "access_token")
		s.Require().NotNil(cookie)
		s.Empty(cookie.Value)
		s.Negative(cookie.MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("returns the authenticated user", func() {
		returnUser := builder.NewUserBuilder().BuildReadModel()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), gomock.Any()).
			Return(returnUser, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "any-token")

		var resp queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(returnUser.Email, resp.Email)
	})

	s.Run("unauthenticated", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "not authenticated")
	})

	s.Run("user vanished after token issue", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "any-token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})
}
