package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"agenda-engine/internal/handler/api"
	"agenda-engine/internal/handler/middleware"
	"agenda-engine/internal/infra/db"
	"agenda-engine/internal/infra/telemetry"
	"agenda-engine/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking        *api.BookingHandler
	Availability   *api.AvailabilityHandler
	Owner          *api.OwnerHandler
	OAuth          *api.OAuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Limiter        middleware.Limiter
	Metrics        *telemetry.Metrics
	Ready          func(ctx context.Context) error
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	metrics *telemetry.Metrics,
	limiter middleware.Limiter,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
	ownerHandler *api.OwnerHandler,
	oauthHandler *api.OAuthHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	h := Handlers{
		Booking:        bookingHandler,
		Availability:   availabilityHandler,
		Owner:          ownerHandler,
		OAuth:          oauthHandler,
		AuthMiddleware: authMiddleware,
		Limiter:        limiter,
		Metrics:        metrics,
		Ready:          db.ReadyCheck(pool),
	}
	setupMiddleware(engine, cfg, h)
	setupRoutes(engine, cfg, logger, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, h Handlers) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	if cfg.Telemetry.MetricsEnabled && h.Metrics != nil {
		engine.Use(middleware.Metrics(h.Metrics))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	engine.GET("/health", healthCheck(h.Ready))
	if cfg.Telemetry.MetricsEnabled && h.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	throttle := middleware.RateLimit(h.Limiter, cfg.RateLimit.Window, logger)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/public-config/:slug", Handler: h.Availability.PublicConfig},
			{Method: http.MethodGet, Path: "/availability/:slug", Handler: h.Availability.Check},
			{Method: http.MethodGet, Path: "/available-hours/:slug", Handler: h.Availability.AvailableHours},
		})

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/:slug", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{throttle}},
				{Method: http.MethodPost, Path: "/cancel/:token", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{throttle}},
				{Method: http.MethodGet, Path: "/cancel/:token", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{throttle}},
			})
		}

		oauth := apiGroup.Group("/oauth")
		{
			addRoutes(oauth, []route{
				{Method: http.MethodGet, Path: "/start", Handler: h.OAuth.Start},
				{Method: http.MethodGet, Path: "/callback", Handler: h.OAuth.Callback},
			})
		}

		owner := apiGroup.Group("/owner")
		owner.Use(h.AuthMiddleware.RequireOwner())
		{
			addRoutes(owner, []route{
				{Method: http.MethodGet, Path: "/usage", Handler: h.Owner.Usage},
				{Method: http.MethodGet, Path: "/appointments", Handler: h.Owner.ListAppointments},
				{Method: http.MethodGet, Path: "/appointments/:id", Handler: h.Owner.GetAppointment},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheck(ready func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ready != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ready(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unavailable",
					"message": "Database unreachable",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Service is healthy",
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
