//go:build e2e

package owner

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"agenda-engine/internal/handler/dto/request"
	"agenda-engine/tests/common/authtest"
	"agenda-engine/tests/common/dbtest"
	"agenda-engine/tests/common/httptest"
	"agenda-engine/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OwnerTestSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestOwnerSuite(t *testing.T) {
	suite.Run(t, new(OwnerTestSuite))
}

func (s *OwnerTestSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *OwnerTestSuite) book(slug, date, tm string) string {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings/"+slug, request.CreateBookingRequest{
		Name:  "Luis",
		Email: "luis@example.test",
		Date:  date,
		Time:  tm,
	}, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var body map[string]any
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &body))
	return body["cancel_token"].(string)
}

func (s *OwnerTestSuite) TestAppointments() {
	wednesday := e2e.UpcomingWeekday(time.Wednesday)

	s.Run("owner sees own bookings only", func() {
		dbtest.CreateBusiness(s.T(), s.DB, dbtest.DefaultBusiness("other"))
		s.book("demo", wednesday, "09:00")
		s.book("demo", wednesday, "11:00")
		s.book("other", wednesday, "09:00")

		token := s.jwt.OwnerToken(s.T(), "demo")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/owner/appointments?from="+wednesday+"&to="+wednesday, nil, token)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		var body struct {
			Items []struct {
				ClientName string `json:"client_name"`
				Date       string `json:"date"`
				Cancelled  bool   `json:"cancelled"`
			} `json:"items"`
			NextCursor string `json:"next_cursor"`
		}
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
		s.Len(body.Items, 2)
		s.Empty(body.NextCursor)
		for _, item := range body.Items {
			s.Equal(wednesday, item.Date)
		}
	})

	s.Run("pagination walks every appointment once", func() {
		for _, tm := range []string{"09:00", "10:00", "11:00"} {
			s.book("demo", wednesday, tm)
		}
		token := s.jwt.OwnerToken(s.T(), "demo")

		seen := 0
		cursor := ""
		for range 5 {
			path := "/api/owner/appointments?limit=2"
			if cursor != "" {
				path += "&cursor=" + cursor
			}
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, token)
			s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
			var page struct {
				Items      []map[string]any `json:"items"`
				NextCursor string           `json:"next_cursor"`
			}
			s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
			seen += len(page.Items)
			if page.NextCursor == "" {
				break
			}
			cursor = page.NextCursor
		}
		s.Equal(3, seen)
	})

	s.Run("cancelled appointments are hidden unless requested", func() {
		cancelToken := s.book("demo", wednesday, "15:00")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings/cancel/"+cancelToken, nil, "")
		s.Require().Equal(http.StatusOK, w.Code)

		token := s.jwt.OwnerToken(s.T(), "demo")
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/owner/appointments", nil, token)
		s.Require().Equal(http.StatusOK, w.Code)
		s.NotContains(w.Body.String(), `"cancelled":true`)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/owner/appointments?include_cancelled=true", nil, token)
		s.Require().Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"cancelled":true`)
	})
}

func (s *OwnerTestSuite) TestUsage() {
	s.Run("usage reports the monthly cap for the free plan", func() {
		token := s.jwt.OwnerToken(s.T(), "demo")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/owner/usage", nil, token)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		var body map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
		s.Equal("demo", body["slug"])
		s.Equal("free", body["plan"])
		s.EqualValues(10, body["limit"])
	})
}

func (s *OwnerTestSuite) TestAuthentication() {
	s.Run("missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/owner/usage", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("expired token", func() {
		token := s.jwt.ExpiredOwnerToken(s.T(), "demo")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/owner/usage", nil, token)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("oauth state cannot be used as an owner token", func() {
		state := s.jwt.StateToken(s.T(), "demo")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/owner/usage", nil, state)
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
