package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"restaurant-booking/internal/handler/api"
	"restaurant-booking/internal/handler/middleware"
	"restaurant-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	bookingHandler *api.BookingHandler,
	allocationHandler *api.AllocationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookingHandler, allocationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, allocationHandler *api.AllocationHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.Patch},
			{Method: http.MethodPut, Path: "/:id/reservation", Handler: bookingHandler.AssignTables},
			{Method: http.MethodPatch, Path: "/:id/reservation/status", Handler: bookingHandler.SetReservationStatus},
		})

		apiGroup.GET("/tables/:id/bookings", bookingHandler.ListByTable)
		apiGroup.GET("/customers/:id/bookings", bookingHandler.ListByCustomer)

		allocation := apiGroup.Group("/allocation")
		addRoutes(allocation, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: allocationHandler.Availability},
			{Method: http.MethodGet, Path: "/availability/legacy", Handler: allocationHandler.LegacyAvailability},
			{Method: http.MethodGet, Path: "/booked-tables", Handler: allocationHandler.BookedTables},
			{Method: http.MethodGet, Path: "/stats", Handler: allocationHandler.Stats},
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
