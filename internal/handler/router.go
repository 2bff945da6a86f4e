package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"seat-reservation/internal/handler/api"
	"seat-reservation/internal/handler/middleware"
	"seat-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, bookingHandler *api.BookingHandler, layoutHandler *api.LayoutHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookingHandler, layoutHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, layoutHandler *api.LayoutHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/layout", Handler: layoutHandler.GetLayout},
		})

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/reserved", Handler: bookingHandler.GetReservedSeats},
				{Method: http.MethodGet, Path: "/stats", Handler: bookingHandler.GetStats},
				{Method: http.MethodGet, Path: "/cache", Handler: bookingHandler.GetCacheInfo},
				{Method: http.MethodPost, Path: "/refresh", Handler: bookingHandler.Refresh},
				{Method: http.MethodPost, Path: "/import", Handler: bookingHandler.ImportBookings},
				{Method: http.MethodGet, Path: "/export", Handler: bookingHandler.ExportBookings},
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking, Mw: []gin.HandlerFunc{middleware.RequireUser()}},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.CancelBooking, Mw: []gin.HandlerFunc{middleware.RequireUser()}},
			})
		}

		me := apiGroup.Group("/me")
		me.Use(middleware.RequireUser())
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetUserData},
				{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.GetUserBookings},
			})
		}
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
