package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (accounts.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *accounts.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	var user accounts.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, accounts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*accounts.User, error) {
	var user accounts.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, accounts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *gormUserRepository) UpdateByID(ctx context.Context, user *accounts.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	r.logger.Info("Updated user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&accounts.User{}).
		Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (r *gormUserRepository) ProfileNameTaken(ctx context.Context, profileName string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&accounts.User{}).
		Where("profile_name = ?", profileName).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check profile name: %w", err)
	}
	return count > 0, nil
}

func (r *gormUserRepository) PhoneNumberTaken(ctx context.Context, phoneNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&accounts.User{}).
		Where("phone_number = ?", phoneNumber).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check phone number: %w", err)
	}
	return count > 0, nil
}

func (r *gormUserRepository) Search(ctx context.Context, query string, excludeIDs []string, limit int) ([]*accounts.User, error) {
	var users []*accounts.User
	dbQuery := r.db.WithContext(ctx).Model(&accounts.User{}).
		Where("is_active = ?", true).
		Where("profile_name LIKE ? OR email LIKE ?", "%"+query+"%", "%"+query+"%")

	if len(excludeIDs) > 0 {
		dbQuery = dbQuery.Where("id NOT IN ?", excludeIDs)
	}
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}

	if err := dbQuery.Order("last_login DESC NULLS LAST").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

func (r *gormUserRepository) ListActiveExcluding(ctx context.Context, excludeIDs []string, limit int) ([]*accounts.User, error) {
	var users []*accounts.User
	dbQuery := r.db.WithContext(ctx).Model(&accounts.User{}).
		Where("is_active = ?", true).
		Where("profile_lock = ?", false)

	if len(excludeIDs) > 0 {
		dbQuery = dbQuery.Where("id NOT IN ?", excludeIDs)
	}
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}

	if err := dbQuery.Order("last_login DESC NULLS LAST").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
