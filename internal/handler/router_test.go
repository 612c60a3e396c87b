//go:build unit

package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name   string
		ready  func(ctx context.Context) error
		status int
		body   string
	}{
		{"database reachable", func(context.Context) error { return nil }, http.StatusOK, `"status":"ok"`},
		{"no readiness probe", nil, http.StatusOK, `"status":"ok"`},
		{"database down", func(context.Context) error { return errors.New("dial tcp: refused") }, http.StatusServiceUnavailable, `"status":"unavailable"`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", healthCheck(tc.ready))

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.body)
		})
	}
}

func TestChainHandlers_StopsOnAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	called := false
	r := gin.New()
	r.GET("/x", chainHandlers(
		func(c *gin.Context) { c.AbortWithStatus(http.StatusTooManyRequests) },
		func(c *gin.Context) { called = true },
	))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.False(t, called)
}
