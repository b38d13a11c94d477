package persistence

import (
	"context"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormBlockRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBlockRepository creates a new GORM-based BlockRepository implementation
func NewGormBlockRepository(db *gorm.DB, logger logger.Logger) (social.BlockRepository, error) {
	return &gormBlockRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBlockRepository) Create(ctx context.Context, block *social.UserBlock) error {
	if err := r.db.WithContext(ctx).Create(block).Error; err != nil {
		return fmt.Errorf("failed to create block: %w", err)
	}

	r.logger.Info("User ", block.BlockerID, " blocked user ", block.BlockedID)
	return nil
}

func (r *gormBlockRepository) Delete(ctx context.Context, blockerID, blockedID string) error {
	err := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&social.UserBlock{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete block: %w", err)
	}
	return nil
}

func (r *gormBlockRepository) Exists(ctx context.Context, blockerID, blockedID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.UserBlock{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check block: %w", err)
	}
	return count > 0, nil
}

func (r *gormBlockRepository) ExistsEither(ctx context.Context, userA, userB string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.UserBlock{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check block: %w", err)
	}
	return count > 0, nil
}

func (r *gormBlockRepository) ListBlockedIDs(ctx context.Context, blockerID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&social.UserBlock{}).
		Where("blocker_id = ?", blockerID).
		Pluck("blocked_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked users: %w", err)
	}
	return ids, nil
}

func (r *gormBlockRepository) ListInvolvedIDs(ctx context.Context, userID string) ([]string, error) {
	var blocks []*social.UserBlock
	err := r.db.WithContext(ctx).
		Where("blocker_id = ? OR blocked_id = ?", userID, userID).
		Find(&blocks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}

	ids := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.BlockerID == userID {
			ids = append(ids, b.BlockedID)
		} else {
			ids = append(ids, b.BlockerID)
		}
	}
	return ids, nil
}
