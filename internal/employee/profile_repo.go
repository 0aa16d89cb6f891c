package employee

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) (*CompensationProfile, error)
	ListEmployeeIDs(ctx context.Context) ([]uuid.UUID, error)
	Save(ctx context.Context, profile *CompensationProfile) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) (*CompensationProfile, error) {
	var profile CompensationProfile
	err := r.db.WithContext(ctx).
		First(&profile, "employee_id = ?", employeeID).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &profile, nil
}

func (r *repository) ListEmployeeIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&CompensationProfile{}).
		Order("employee_id ASC").
		Pluck("employee_id", &ids).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return ids, nil
}

func (r *repository) Save(ctx context.Context, profile *CompensationProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return mapRepositoryError(err)
	}
	return nil
}
