package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/luminus-backend/internal/derive"
	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/services"
)

type Services struct {
	Auth         services.AuthService
	Roster       services.RosterService
	Employee     services.EmployeeService
	Relationship services.RelationshipService
	Analytics    services.AnalyticsService
	Insights     services.InsightsService
	Performance  services.PerformanceService
	Avatar       services.AvatarService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients) (Services, error) {
	weights := derive.DefaultWeights()
	if cfg.WeightsFile != "" {
		loaded, err := derive.LoadWeights(cfg.WeightsFile)
		if err != nil {
			return Services{}, err
		}
		weights = loaded
	}

	return Services{
		Auth:         services.NewAuthService(reposet.User, clients.Sessions, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log),
		Roster:       services.NewRosterService(db, reposet.Employee, reposet.Relationship, clients.Graph, weights, log),
		Employee:     services.NewEmployeeService(db, reposet.Employee, reposet.Relationship, log),
		Relationship: services.NewRelationshipService(db, reposet.Employee, reposet.Relationship, log),
		Analytics:    services.NewAnalyticsService(reposet.Employee, log),
		Insights:     services.NewInsightsService(reposet.Employee, clients.Oracle, log),
		Performance:  services.NewPerformanceService(reposet.Employee, log),
		Avatar:       services.NewAvatarService(log),
	}, nil
}
