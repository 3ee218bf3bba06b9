package repos

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/yungbote/luminus-backend/internal/pkg/errors"
	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/types"
)

// EmployeeFilter narrows list queries. Zero value means no filtering.
type EmployeeFilter struct {
	Search     string
	Department string
}

type EmployeeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, employees []*types.Employee) ([]*types.Employee, error)
	GetByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, filter EmployeeFilter) ([]*types.Employee, error)
	GetByID(ctx context.Context, tx *gorm.DB, ownerID, employeeID uuid.UUID) (*types.Employee, error)
	DeleteByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) error
	DeleteByID(ctx context.Context, tx *gorm.DB, ownerID, employeeID uuid.UUID) error
	CountByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) (int64, error)
}

type employeeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmployeeRepo(db *gorm.DB, baseLog *logger.Logger) EmployeeRepo {
	repoLog := baseLog.With("repo", "EmployeeRepo")
	return &employeeRepo{db: db, log: repoLog}
}

func (er *employeeRepo) Create(ctx context.Context, tx *gorm.DB, employees []*types.Employee) ([]*types.Employee, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	if len(employees) == 0 {
		return []*types.Employee{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (er *employeeRepo) GetByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, filter EmployeeFilter) ([]*types.Employee, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	query := transaction.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("batch_seq ASC")
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(role) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}
	if d := strings.TrimSpace(filter.Department); d != "" {
		query = query.Where("department = ?", d)
	}

	var results []*types.Employee
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *employeeRepo) GetByID(ctx context.Context, tx *gorm.DB, ownerID, employeeID uuid.UUID) (*types.Employee, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var employee types.Employee
	if err := transaction.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, employeeID).
		First(&employee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (er *employeeRepo) DeleteByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	return transaction.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&types.Employee{}).Error
}

func (er *employeeRepo) DeleteByID(ctx context.Context, tx *gorm.DB, ownerID, employeeID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	result := transaction.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, employeeID).
		Delete(&types.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (er *employeeRepo) CountByOwner(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Employee{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
