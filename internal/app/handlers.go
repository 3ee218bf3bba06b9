package app

import (
	"github.com/yungbote/luminus-backend/internal/handlers"
	"github.com/yungbote/luminus-backend/internal/pkg/logger"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Roster       *handlers.RosterHandler
	Employee     *handlers.EmployeeHandler
	Relationship *handlers.RelationshipHandler
	Analytics    *handlers.AnalyticsHandler
}

func wireHandlers(log *logger.Logger, reposet Repos, serviceset Services) Handlers {
	return Handlers{
		Auth:         handlers.NewAuthHandler(log, serviceset.Auth),
		User:         handlers.NewUserHandler(log, reposet.User),
		Roster:       handlers.NewRosterHandler(log, serviceset.Roster),
		Employee:     handlers.NewEmployeeHandler(log, serviceset.Employee, serviceset.Avatar),
		Relationship: handlers.NewRelationshipHandler(log, serviceset.Relationship),
		Analytics:    handlers.NewAnalyticsHandler(log, serviceset.Analytics, serviceset.Insights, serviceset.Performance),
	}
}
