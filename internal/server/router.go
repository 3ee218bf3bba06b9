package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/luminus-backend/internal/handlers"
	"github.com/yungbote/luminus-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler         *handlers.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	UserHandler         *handlers.UserHandler
	RosterHandler       *handlers.RosterHandler
	EmployeeHandler     *handlers.EmployeeHandler
	RelationshipHandler *handlers.RelationshipHandler
	AnalyticsHandler    *handlers.AnalyticsHandler
	AllowOrigins        []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware("luminus-backend"))

	// Cors
	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)
	// User
	protected.GET("/user", cfg.UserHandler.GetMe)
	// Roster ingestion
	protected.POST("/promotion-parser", cfg.RosterHandler.Upload)
	// Employees
	protected.GET("/dashboard", cfg.EmployeeHandler.Graph)
	protected.GET("/roster", cfg.EmployeeHandler.Dashboard)
	protected.GET("/employees", cfg.EmployeeHandler.List)
	protected.GET("/employee/:id", cfg.EmployeeHandler.Get)
	protected.DELETE("/employee/:id", cfg.EmployeeHandler.Delete)
	protected.GET("/employee/:id/avatar", cfg.EmployeeHandler.Avatar)
	// Relationships
	protected.GET("/relationships", cfg.RelationshipHandler.List)
	protected.POST("/relationships", cfg.RelationshipHandler.Create)
	protected.POST("/relationships/bulk", cfg.RelationshipHandler.Bulk)
	protected.DELETE("/relationships/:id", cfg.RelationshipHandler.Delete)
	// Analytics
	protected.GET("/analytics", cfg.AnalyticsHandler.Analytics)
	protected.GET("/insights", cfg.AnalyticsHandler.Insights)
	protected.GET("/performance", cfg.AnalyticsHandler.Performance)

	return router
}
