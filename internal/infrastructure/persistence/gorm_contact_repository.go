package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormContactRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormContactRepository creates a new GORM-based ContactRepository implementation
func NewGormContactRepository(db *gorm.DB, logger logger.Logger) (accounts.ContactRepository, error) {
	return &gormContactRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormContactRepository) CreateExtraEmail(ctx context.Context, email *accounts.ExtraEmail) error {
	if err := r.db.WithContext(ctx).Create(email).Error; err != nil {
		return fmt.Errorf("failed to create extra email: %w", err)
	}

	r.logger.Info("Created extra email for user ", email.UserID)
	return nil
}

func (r *gormContactRepository) GetExtraEmail(ctx context.Context, id uint) (*accounts.ExtraEmail, error) {
	var email accounts.ExtraEmail
	if err := r.db.WithContext(ctx).First(&email, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("extra email %d: %w", id, accounts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch extra email: %w", err)
	}
	return &email, nil
}

func (r *gormContactRepository) ListExtraEmails(ctx context.Context, userID string) ([]*accounts.ExtraEmail, error) {
	var emails []*accounts.ExtraEmail
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&emails).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list extra emails: %w", err)
	}
	return emails, nil
}

func (r *gormContactRepository) DeleteExtraEmail(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&accounts.ExtraEmail{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete extra email: %w", err)
	}
	return nil
}

func (r *gormContactRepository) ExtraEmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&accounts.ExtraEmail{}).
		Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check extra email: %w", err)
	}
	return count > 0, nil
}

func (r *gormContactRepository) CreateExtraPhoneNumber(ctx context.Context, phone *accounts.ExtraPhoneNumber) error {
	if err := r.db.WithContext(ctx).Create(phone).Error; err != nil {
		return fmt.Errorf("failed to create extra phone number: %w", err)
	}

	r.logger.Info("Created extra phone number for user ", phone.UserID)
	return nil
}

func (r *gormContactRepository) GetExtraPhoneNumber(ctx context.Context, id uint) (*accounts.ExtraPhoneNumber, error) {
	var phone accounts.ExtraPhoneNumber
	if err := r.db.WithContext(ctx).First(&phone, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("extra phone number %d: %w", id, accounts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch extra phone number: %w", err)
	}
	return &phone, nil
}

func (r *gormContactRepository) ListExtraPhoneNumbers(ctx context.Context, userID string) ([]*accounts.ExtraPhoneNumber, error) {
	var phones []*accounts.ExtraPhoneNumber
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&phones).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list extra phone numbers: %w", err)
	}
	return phones, nil
}

func (r *gormContactRepository) DeleteExtraPhoneNumber(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&accounts.ExtraPhoneNumber{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete extra phone number: %w", err)
	}
	return nil
}

func (r *gormContactRepository) ExtraPhoneNumberTaken(ctx context.Context, phoneNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&accounts.ExtraPhoneNumber{}).
		Where("phone_number = ?", phoneNumber).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check extra phone number: %w", err)
	}
	return count > 0, nil
}
