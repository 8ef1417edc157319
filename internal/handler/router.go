package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"classroom-reservation/internal/domain/user"
	"classroom-reservation/internal/handler/api"
	"classroom-reservation/internal/handler/middleware"
	"classroom-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation *api.ReservationHandler
	Trust       *api.TrustHandler
	Point       *api.PointHandler
	Occupancy   *api.OccupancyHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staffOnly := authMiddleware.RequireRoleAtLeast(user.RoleStaff)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/usage-summary", Handler: h.Reservation.UsageSummary},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Reservation.CheckIn},
			{Method: http.MethodPost, Path: "/:id/check-out", Handler: h.Reservation.CheckOut},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
			{Method: http.MethodGet, Path: "/:id/occupancy", Handler: h.Occupancy.EstimateForReservation},
		})

		addRoutes(apiGroup.Group("/occupancy"), []route{
			{Method: http.MethodGet, Path: "/estimate", Handler: h.Occupancy.Estimate},
		})

		addRoutes(apiGroup.Group("/trust"), []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Trust.GetMine},
			{Method: http.MethodGet, Path: "/:userId", Handler: h.Trust.Get},
			{Method: http.MethodPatch, Path: "/:userId", Handler: h.Trust.Update, Mw: []gin.HandlerFunc{staffOnly}},
		})

		addRoutes(apiGroup.Group("/points"), []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Point.GetMine},
			{Method: http.MethodGet, Path: "/me/history", Handler: h.Point.History},
			{Method: http.MethodGet, Path: "/:userId", Handler: h.Point.Get},
			{Method: http.MethodPost, Path: "/:userId/add", Handler: h.Point.Add, Mw: []gin.HandlerFunc{staffOnly}},
			{Method: http.MethodPost, Path: "/:userId/deduct", Handler: h.Point.Deduct, Mw: []gin.HandlerFunc{staffOnly}},
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
