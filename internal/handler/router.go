package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fieldbook/internal/handler/api"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Field       *api.FieldHandler
	Reservation *api.ReservationHandler
	Match       *api.MatchHandler
	Profile     *api.ProfileHandler
}

// limiter may be nil when rate limiting is disabled.
func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter middleware.RateLimiter) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter middleware.RateLimiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	// Resolve the caller first so the limiter can key on the user.
	apiGroup.Use(authMiddleware.OptionalAuth())
	if limiter != nil {
		apiGroup.Use(middleware.RateLimit(limiter))
	}
	requireAuth := authMiddleware.RequireAuth()

	{
		fields := apiGroup.Group("/fields")
		addRoutes(fields, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Field.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Field.Get},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Field.Availability},
			{Method: http.MethodGet, Path: "/:id/schedule", Handler: h.Field.Schedule},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
		})

		matches := apiGroup.Group("/matches")
		addRoutes(matches, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Match.Get},
			{Method: http.MethodPost, Path: "/:id/join", Handler: h.Match.Join, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id/participants/me", Handler: h.Match.Leave, Mw: []gin.HandlerFunc{requireAuth}},
		})

		me := apiGroup.Group("/me")
		me.Use(requireAuth)
		addRoutes(me, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Profile.Me},
			{Method: http.MethodPut, Path: "/contact", Handler: h.Profile.UpdateContact},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, hs...)
	}
}
