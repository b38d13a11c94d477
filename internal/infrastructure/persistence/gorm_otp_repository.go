package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormOTPRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOTPRepository creates a new GORM-based OTPRepository implementation
func NewGormOTPRepository(db *gorm.DB, logger logger.Logger) (accounts.OTPRepository, error) {
	return &gormOTPRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOTPRepository) Create(ctx context.Context, otp *accounts.OTP) error {
	if err := r.db.WithContext(ctx).Create(otp).Error; err != nil {
		return fmt.Errorf("failed to create otp: %w", err)
	}

	r.logger.Info("Created otp for user ", otp.UserID)
	return nil
}

func (r *gormOTPRepository) GetByUserAndCode(ctx context.Context, userID, code string) (*accounts.OTP, error) {
	var otp accounts.OTP
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND code = ?", userID, code).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("otp for user %s: %w", userID, accounts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch otp: %w", err)
	}
	return &otp, nil
}

func (r *gormOTPRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&accounts.OTP{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete otp: %w", err)
	}
	return nil
}
