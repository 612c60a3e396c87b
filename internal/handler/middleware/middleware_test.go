//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"agenda-engine/internal/handler/middleware"
	"agenda-engine/internal/pkg/jwt"
	"agenda-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	claims *jwt.Claims
	err    error
}

func (v stubValidator) ValidateToken(string) (*jwt.Claims, error) { return v.claims, v.err }

type stubLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (l *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allowed, l.err
}

type observation struct {
	method, route string
	status        int
}

type stubObserver struct {
	seen []observation
}

func (o *stubObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	o.seen = append(o.seen, observation{method, route, status})
}

func init() {
	gin.SetMode(gin.TestMode)
}

func echoSlug(c *gin.Context) {
	slug, ok := middleware.GetBusinessSlug(c)
	if !ok {
		c.Status(http.StatusTeapot)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slug": slug})
}

func TestRequireOwner(t *testing.T) {
	newRouter := func(v middleware.TokenValidator) *gin.Engine {
		r := gin.New()
		r.GET("/owner", middleware.NewAuthMiddleware(v).RequireOwner(), echoSlug)
		return r
	}

	t.Run("success: scopes the request to the token's business", func(t *testing.T) {
		claims := &jwt.Claims{BusinessSlug: "acme"}
		rec := httptest.PerformRequest(t, newRouter(stubValidator{claims: claims}), http.MethodGet, "/owner", nil, "good")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "acme", body["slug"])
	})

	t.Run("error: missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, newRouter(stubValidator{}), http.MethodGet, "/owner", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("error: invalid token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, newRouter(stubValidator{err: errors.New("token is expired")}), http.MethodGet, "/owner", nil, "stale")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRateLimit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	newRouter := func(l middleware.Limiter) *gin.Engine {
		r := gin.New()
		r.POST("/bookings/:slug", middleware.RateLimit(l, time.Minute, logger), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})
		return r
	}

	t.Run("allowed", func(t *testing.T) {
		l := &stubLimiter{allowed: true}
		rec := httptest.PerformRequest(t, newRouter(l), http.MethodPost, "/bookings/acme", nil, "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, l.keys, 1)
		assert.Equal(t, "/bookings/:slug|192.0.2.1", l.keys[0])
	})

	t.Run("denied with retry hint", func(t *testing.T) {
		rec := httptest.PerformRequest(t, newRouter(&stubLimiter{allowed: false}), http.MethodPost, "/bookings/acme", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
		httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "60"})
	})

	t.Run("limiter outage lets the request through", func(t *testing.T) {
		rec := httptest.PerformRequest(t, newRouter(&stubLimiter{err: errors.New("redis down")}), http.MethodPost, "/bookings/acme", nil, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestMetrics(t *testing.T) {
	obs := &stubObserver{}
	r := gin.New()
	r.Use(middleware.Metrics(obs))
	r.GET("/api/availability/:slug", func(c *gin.Context) { c.Status(http.StatusOK) })

	httptest.PerformRequest(t, r, http.MethodGet, "/api/availability/acme", nil, "")
	httptest.PerformRequest(t, r, http.MethodGet, "/nowhere", nil, "")

	require.Len(t, obs.seen, 2)
	assert.Equal(t, observation{http.MethodGet, "/api/availability/:slug", http.StatusOK}, obs.seen[0])
	assert.Equal(t, observation{http.MethodGet, "unmatched", http.StatusNotFound}, obs.seen[1])
}
