package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/yungbote/luminus-backend/internal/pkg/errors"
	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/types"
)

type RelationshipRepo interface {
	Create(ctx context.Context, tx *gorm.DB, relationships []*types.Relationship) ([]*types.Relationship, error)
	Upsert(ctx context.Context, tx *gorm.DB, relationship *types.Relationship) (*types.Relationship, error)
	GetByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*types.Relationship, error)
	DeleteByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) error
	DeleteByID(ctx context.Context, tx *gorm.DB, ownerID, relationshipID uuid.UUID) error
	DeleteByEmployee(ctx context.Context, tx *gorm.DB, ownerID, employeeID uuid.UUID) error
}

type relationshipRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRelationshipRepo(db *gorm.DB, baseLog *logger.Logger) RelationshipRepo {
	repoLog := baseLog.With("repo", "RelationshipRepo")
	return &relationshipRepo{db: db, log: repoLog}
}

func (rr *relationshipRepo) Create(ctx context.Context, tx *gorm.DB, relationships []*types.Relationship) ([]*types.Relationship, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if len(relationships) == 0 {
		return []*types.Relationship{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&relationships).Error; err != nil {
		return nil, err
	}
	return relationships, nil
}

// Upsert writes one edge, replacing the strength of an existing
// (owner, source, target, type) edge.
func (rr *relationshipRepo) Upsert(ctx context.Context, tx *gorm.DB, relationship *types.Relationship) (*types.Relationship, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "owner_id"}, {Name: "source_id"}, {Name: "target_id"}, {Name: "type"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"strength", "updated_at"}),
		}).
		Create(relationship).Error; err != nil {
		return nil, err
	}
	return relationship, nil
}

func (rr *relationshipRepo) GetByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*types.Relationship, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*types.Relationship
	if err := transaction.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *relationshipRepo) DeleteByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	return transaction.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&types.Relationship{}).Error
}

func (rr *relationshipRepo) DeleteByID(ctx context.Context, tx *gorm.DB, ownerID, relationshipID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	result := transaction.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, relationshipID).
		Delete(&types.Relationship{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteByEmployee removes every edge touching one employee, used when an
// employee is deleted individually.
func (rr *relationshipRepo) DeleteByEmployee(ctx context.Context, tx *gorm.DB, ownerID, employeeID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	return transaction.WithContext(ctx).
		Where("owner_id = ? AND (source_id = ? OR target_id = ?)", ownerID, employeeID, employeeID).
		Delete(&types.Relationship{}).Error
}
