package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/luminus-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:         handlerset.Auth,
		AuthMiddleware:      middlewareset.Auth,
		UserHandler:         handlerset.User,
		RosterHandler:       handlerset.Roster,
		EmployeeHandler:     handlerset.Employee,
		RelationshipHandler: handlerset.Relationship,
		AnalyticsHandler:    handlerset.Analytics,
		AllowOrigins:        cfg.AllowOrigins,
	})
}
