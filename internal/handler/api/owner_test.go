//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"agenda-engine/internal/handler/api"
	resdto "agenda-engine/internal/handler/dto/response"
	"agenda-engine/internal/usecase/queries"
	"agenda-engine/tests/common/builder"
	"agenda-engine/tests/common/httptest"
	queriesmock "agenda-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OwnerHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	anonymous *gin.Engine
	mockCtrl  *gomock.Controller
	mockOwner *queriesmock.MockOwnerQueries
}

func (s *OwnerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOwner = queriesmock.NewMockOwnerQueries(s.mockCtrl)
	h := api.NewOwnerHandler(s.mockOwner)

	// stands in for RequireOwner
	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		c.Set("business_slug", "acme")
		c.Next()
	})
	s.router.GET("/owner/usage", h.Usage)
	s.router.GET("/owner/appointments", h.ListAppointments)
	s.router.GET("/owner/appointments/:id", h.GetAppointment)

	s.anonymous = gin.New()
	s.anonymous.GET("/owner/usage", h.Usage)
	s.anonymous.GET("/owner/appointments", h.ListAppointments)
	s.anonymous.GET("/owner/appointments/:id", h.GetAppointment)
}

func (s *OwnerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOwnerHandlerSuite(t *testing.T) {
	suite.Run(t, new(OwnerHandlerTestSuite))
}

func (s *OwnerHandlerTestSuite) TestUsage() {
	s.Run("success", func() {
		limit := 10
		s.mockOwner.EXPECT().Usage(gomock.Any(), "acme").
			Return(&queries.UsageView{Slug: "acme", Plan: "free", Month: "2025-03", Count: 4, Limit: &limit}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/usage", nil, "")

		var body resdto.UsageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(4, body.Count)
		s.Require().NotNil(body.Limit)
		s.Equal(10, *body.Limit)
	})

	s.Run("error: no owner in context", func() {
		rec := httptest.PerformRequest(s.T(), s.anonymous, http.MethodGet, "/owner/usage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *OwnerHandlerTestSuite) TestListAppointments() {
	s.Run("success: filters and cursor are forwarded", func() {
		views := []*queries.AppointmentView{
			builder.NewAppointmentBuilder().BuildView(),
			builder.NewAppointmentBuilder().WithPhone("+1 809 555 0101").BuildView(),
		}
		s.mockOwner.EXPECT().ListAppointments(gomock.Any(), "acme", queries.AppointmentListRequest{
			From: "2025-03-01", To: "2025-03-31", IncludeCancelled: true,
		}, &queries.Cursor{After: "c1"}, 2).Return(views, &queries.Cursor{After: "c2"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/owner/appointments?from=2025-03-01&to=2025-03-31&include_cancelled=true&cursor=c1&limit=2", nil, "")

		var body resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal("c2", body.NextCursor)
		s.Equal(views[0].ID, body.Items[0].ID)
		s.Nil(body.Items[0].ClientPhone)
		s.Require().NotNil(body.Items[1].ClientPhone)
		s.Equal("+1 809 555 0101", *body.Items[1].ClientPhone)
	})

	s.Run("success: default page size and empty page", func() {
		s.mockOwner.EXPECT().ListAppointments(gomock.Any(), "acme", queries.AppointmentListRequest{}, nil, 50).
			Return([]*queries.AppointmentView{}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/appointments", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[]}`, rec.Body.String())
	})

	s.Run("error: limit out of range", func() {
		for _, q := range []string{"limit=201", "limit=-1", "limit=abc"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/appointments?"+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: usecase errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"bad cursor", queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
			{"bad range", queries.ErrInvalidRange, http.StatusBadRequest, "Invalid date range"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockOwner.EXPECT().ListAppointments(gomock.Any(), "acme", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/appointments?cursor=zzz", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})

	s.Run("error: no owner in context", func() {
		rec := httptest.PerformRequest(s.T(), s.anonymous, http.MethodGet, "/owner/appointments", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *OwnerHandlerTestSuite) TestGetAppointment() {
	s.Run("success", func() {
		cancelledAt := time.Date(2025, time.March, 9, 18, 0, 0, 0, time.UTC)
		view := builder.NewAppointmentBuilder().AsCancelled(cancelledAt).BuildView()
		s.mockOwner.EXPECT().GetAppointment(gomock.Any(), "acme", view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/appointments/"+view.ID.String(), nil, "")

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.True(body.Cancelled)
		s.Require().NotNil(body.CancelledAt)
		s.True(cancelledAt.Equal(*body.CancelledAt))
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/appointments/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: other business or missing", func() {
		id := uuid.New()
		s.mockOwner.EXPECT().GetAppointment(gomock.Any(), "acme", id).Return(nil, queries.ErrAppointmentNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/appointments/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}
