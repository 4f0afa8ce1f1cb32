package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bikeshare-api/internal/domain/user"
	"bikeshare-api/internal/handler/api"
	"bikeshare-api/internal/handler/middleware"
	"bikeshare-api/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	bikeHandler *api.BikeHandler,
	bookingHandler *api.BookingHandler,
	assistantHandler *api.AssistantHandler,
	feedbackHandler *api.FeedbackHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bikeHandler, bookingHandler, assistantHandler, feedbackHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bikeHandler *api.BikeHandler,
	bookingHandler *api.BookingHandler,
	assistantHandler *api.AssistantHandler,
	feedbackHandler *api.FeedbackHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})
		}

		// Browsing the fleet and checking availability are public.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: bikeHandler.SearchAvailability},
		})

		bikes := apiGroup.Group("/bikes")
		{
			addRoutes(bikes, []route{
				{Method: http.MethodGet, Path: "", Handler: bikeHandler.ListBikes},
				{Method: http.MethodGet, Path: "/:id", Handler: bikeHandler.GetBike},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: bikeHandler.CheckAvailability},
			})

			operatorOnly := bikes.Group("")
			operatorOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOperator))
			addRoutes(operatorOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: bikeHandler.AddBike},
				{Method: http.MethodPatch, Path: "/:id", Handler: bikeHandler.UpdateBike},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
			})
		}

		assistant := apiGroup.Group("/assistant")
		{
			addRoutes(assistant, []route{
				{Method: http.MethodPost, Path: "/ask", Handler: assistantHandler.Ask},
			})

			lookups := assistant.Group("")
			lookups.Use(authMiddleware.RequireAuth())
			addRoutes(lookups, []route{
				{Method: http.MethodGet, Path: "/bookings/:reference", Handler: assistantHandler.LookupBooking},
			})
		}

		feedback := apiGroup.Group("/feedback")
		{
			addRoutes(feedback, []route{
				{Method: http.MethodPost, Path: "", Handler: feedbackHandler.SubmitFeedback},
			})

			concerns := feedback.Group("")
			concerns.Use(authMiddleware.RequireAuth())
			addRoutes(concerns, []route{
				{Method: http.MethodPost, Path: "/concerns", Handler: feedbackHandler.SubmitConcern},
			})

			// The feedback listing is an analytics surface.
			analytics := feedback.Group("")
			analytics.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOperator))
			addRoutes(analytics, []route{
				{Method: http.MethodGet, Path: "", Handler: feedbackHandler.ListFeedback},
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
