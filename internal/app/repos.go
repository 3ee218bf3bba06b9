package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/repos"
)

type Repos struct {
	User         repos.UserRepo
	Employee     repos.EmployeeRepo
	Relationship repos.RelationshipRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		User:         repos.NewUserRepo(db, log),
		Employee:     repos.NewEmployeeRepo(db, log),
		Relationship: repos.NewRelationshipRepo(db, log),
	}
}
