package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProfileRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProfileRepository creates a new GORM-based ProfileRepository implementation
func NewGormProfileRepository(db *gorm.DB, logger logger.Logger) (accounts.ProfileRepository, error) {
	return &gormProfileRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProfileRepository) CreateLocation(ctx context.Context, location *accounts.Location) error {
	if err := r.db.WithContext(ctx).Create(location).Error; err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

func (r *gormProfileRepository) GetLocation(ctx context.Context, id uint) (*accounts.Location, error) {
	var location accounts.Location
	if err := r.db.WithContext(ctx).First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("location %d: %w", id, accounts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch location: %w", err)
	}
	return &location, nil
}

func (r *gormProfileRepository) ListLocations(ctx context.Context, userID string) ([]*accounts.Location, error) {
	var locations []*accounts.Location
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&locations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (r *gormProfileRepository) UpdateLocation(ctx context.Context, location *accounts.Location) error {
	if err := r.db.WithContext(ctx).Save(location).Error; err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	return nil
}

func (r *gormProfileRepository) DeleteLocation(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&accounts.Location{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

func (r *gormProfileRepository) CreateWork(ctx context.Context, work *accounts.Work) error {
	if err := r.db.WithContext(ctx).Create(work).Error; err != nil {
		return fmt.Errorf("failed to create work entry: %w", err)
	}
	return nil
}

func (r *gormProfileRepository) GetWork(ctx context.Context, id uint) (*accounts.Work, error) {
	var work accounts.Work
	if err := r.db.WithContext(ctx).First(&work, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("work entry %d: %w", id, accounts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch work entry: %w", err)
	}
	return &work, nil
}

func (r *gormProfileRepository) ListWorks(ctx context.Context, userID string) ([]*accounts.Work, error) {
	var works []*accounts.Work
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&works).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list work entries: %w", err)
	}
	return works, nil
}

func (r *gormProfileRepository) UpdateWork(ctx context.Context, work *accounts.Work) error {
	if err := r.db.WithContext(ctx).Save(work).Error; err != nil {
		return fmt.Errorf("failed to update work entry: %w", err)
	}
	return nil
}

func (r *gormProfileRepository) DeleteWork(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&accounts.Work{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete work entry: %w", err)
	}
	return nil
}

func (r *gormProfileRepository) CreateEducation(ctx context.Context, education *accounts.Education) error {
	if err := r.db.WithContext(ctx).Create(education).Error; err != nil {
		return fmt.Errorf("failed to create education entry: %w", err)
	}
	return nil
}

func (r *gormProfileRepository) GetEducation(ctx context.Context, id uint) (*accounts.Education, error) {
	var education accounts.Education
	if err := r.db.WithContext(ctx).First(&education, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("education entry %d: %w", id, accounts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch education entry: %w", err)
	}
	return &education, nil
}

func (r *gormProfileRepository) ListEducations(ctx context.Context, userID string) ([]*accounts.Education, error) {
	var educations []*accounts.Education
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&educations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list education entries: %w", err)
	}
	return educations, nil
}

func (r *gormProfileRepository) UpdateEducation(ctx context.Context, education *accounts.Education) error {
	if err := r.db.WithContext(ctx).Save(education).Error; err != nil {
		return fmt.Errorf("failed to update education entry: %w", err)
	}
	return nil
}

func (r *gormProfileRepository) DeleteEducation(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&accounts.Education{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete education entry: %w", err)
	}
	return nil
}
