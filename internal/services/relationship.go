package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/yungbote/luminus-backend/internal/pkg/errors"
	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/repos"
	"github.com/yungbote/luminus-backend/internal/types"
)

// EdgeInput is one manually managed relationship edge.
type EdgeInput struct {
	SourceID string `json:"source_id" binding:"required"`
	TargetID string `json:"target_id" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Strength int    `json:"strength"`
}

type RelationshipService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*types.Relationship, error)
	Upsert(ctx context.Context, ownerID uuid.UUID, input EdgeInput) (*types.Relationship, error)
	BulkUpsert(ctx context.Context, ownerID uuid.UUID, inputs []EdgeInput) ([]*types.Relationship, error)
	Delete(ctx context.Context, ownerID, relationshipID uuid.UUID) error
}

type relationshipService struct {
	db               *gorm.DB
	employeeRepo     repos.EmployeeRepo
	relationshipRepo repos.RelationshipRepo
	log              *logger.Logger
}

func NewRelationshipService(db *gorm.DB, employeeRepo repos.EmployeeRepo, relationshipRepo repos.RelationshipRepo, baseLog *logger.Logger) RelationshipService {
	serviceLog := baseLog.With("service", "RelationshipService")
	return &relationshipService{
		db:               db,
		employeeRepo:     employeeRepo,
		relationshipRepo: relationshipRepo,
		log:              serviceLog,
	}
}

func (s *relationshipService) List(ctx context.Context, ownerID uuid.UUID) ([]*types.Relationship, error) {
	return s.relationshipRepo.GetByOwner(ctx, nil, ownerID)
}

func (s *relationshipService) Upsert(ctx context.Context, ownerID uuid.UUID, input EdgeInput) (*types.Relationship, error) {
	record, err := s.validate(ctx, ownerID, input)
	if err != nil {
		return nil, err
	}
	return s.relationshipRepo.Upsert(ctx, nil, record)
}

// BulkUpsert replaces the owner's whole edge set with the given list.
func (s *relationshipService) BulkUpsert(ctx context.Context, ownerID uuid.UUID, inputs []EdgeInput) ([]*types.Relationship, error) {
	records := make([]*types.Relationship, 0, len(inputs))
	for i, input := range inputs {
		record, err := s.validate(ctx, ownerID, input)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		records = append(records, record)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.relationshipRepo.DeleteByOwner(ctx, tx, ownerID); err != nil {
			return err
		}
		for _, record := range records {
			if _, err := s.relationshipRepo.Upsert(ctx, tx, record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *relationshipService) Delete(ctx context.Context, ownerID, relationshipID uuid.UUID) error {
	return s.relationshipRepo.DeleteByID(ctx, nil, ownerID, relationshipID)
}

func (s *relationshipService) validate(ctx context.Context, ownerID uuid.UUID, input EdgeInput) (*types.Relationship, error) {
	switch input.Type {
	case types.RelMentorship, types.RelCollaboration, types.RelRecognition, types.RelSupport, types.RelReporting:
	default:
		return nil, fmt.Errorf("unknown relationship type %q: %w", input.Type, apperrors.ErrInvalidArgument)
	}
	if input.SourceID == input.TargetID {
		return nil, fmt.Errorf("self edges are not allowed: %w", apperrors.ErrInvalidArgument)
	}
	sourceID, err := uuid.Parse(input.SourceID)
	if err != nil {
		return nil, fmt.Errorf("bad source id: %w", apperrors.ErrInvalidArgument)
	}
	targetID, err := uuid.Parse(input.TargetID)
	if err != nil {
		return nil, fmt.Errorf("bad target id: %w", apperrors.ErrInvalidArgument)
	}

	for _, id := range []uuid.UUID{sourceID, targetID} {
		if _, err := s.employeeRepo.GetByID(ctx, nil, ownerID, id); err != nil {
			if err == apperrors.ErrNotFound {
				return nil, fmt.Errorf("employee %s not in roster: %w", id, apperrors.ErrInvalidArgument)
			}
			return nil, err
		}
	}

	strength := input.Strength
	if strength < 1 {
		strength = 1
	}
	if strength > 10 {
		strength = 10
	}

	return &types.Relationship{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		SourceID: sourceID,
		TargetID: targetID,
		Strength: strength,
		Type:     input.Type,
	}, nil
}
