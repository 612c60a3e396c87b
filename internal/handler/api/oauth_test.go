//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"agenda-engine/internal/handler/api"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/usecase/commands"
	"agenda-engine/internal/usecase/queries"
	"agenda-engine/tests/common/httptest"
	commandsmock "agenda-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OAuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockConnect *commandsmock.MockCalendarConnectCommands
}

func (s *OAuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockConnect = commandsmock.NewMockCalendarConnectCommands(s.mockCtrl)
	h := api.NewOAuthHandler(s.mockConnect)

	s.router.GET("/oauth/start", h.Start)
	s.router.GET("/oauth/callback", h.Callback)
}

func (s *OAuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(OAuthHandlerTestSuite))
}

func (s *OAuthHandlerTestSuite) TestStart() {
	s.Run("success: redirects to consent screen", func() {
		s.mockConnect.EXPECT().StartConnect(gomock.Any(), "acme").Return("https://accounts.test/auth?state=x", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/oauth/start?slug=acme", nil, "")

		s.Equal(http.StatusFound, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "https://accounts.test/auth?state=x"})
	})

	s.Run("error: slug required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/oauth/start", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: unknown business", func() {
		s.mockConnect.EXPECT().StartConnect(gomock.Any(), "ghost").Return("", queries.ErrBusinessNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/oauth/start?slug=ghost", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Business not found")
	})
}

func (s *OAuthHandlerTestSuite) TestCallback() {
	s.Run("success", func() {
		s.mockConnect.EXPECT().CompleteConnect(gomock.Any(), "code-1", "state-1").Return("acme", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/oauth/callback?code=code-1&state=state-1", nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("connected", body["status"])
		s.Equal("acme", body["slug"])
	})

	s.Run("error: missing parameters", func() {
		for _, q := range []string{"code=code-1", "state=state-1", ""} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/oauth/callback?"+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: usecase errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{"forged state", errs.Mark(errors.New("signature mismatch"), commands.ErrInvalidOAuthState), http.StatusBadRequest},
			{"exchange failed", errs.Mark(errors.New("invalid_grant"), commands.ErrCalendarConnectFailed), http.StatusBadGateway},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockConnect.EXPECT().CompleteConnect(gomock.Any(), gomock.Any(), gomock.Any()).Return("", tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/oauth/callback?code=c&state=s", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}
