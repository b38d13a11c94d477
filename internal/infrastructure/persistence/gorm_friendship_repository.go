package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormFriendshipRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormFriendshipRepository creates a new GORM-based FriendshipRepository implementation
func NewGormFriendshipRepository(db *gorm.DB, logger logger.Logger) (accounts.FriendshipRepository, error) {
	return &gormFriendshipRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormFriendshipRepository) Create(ctx context.Context, friendship *accounts.Friendship) error {
	if err := r.db.WithContext(ctx).Create(friendship).Error; err != nil {
		return fmt.Errorf("failed to create friendship: %w", err)
	}

	r.logger.Info("Created friendship with id ", friendship.ID)
	return nil
}

func (r *gormFriendshipRepository) GetByPair(ctx context.Context, userA, userB string) (*accounts.Friendship, error) {
	var friendship accounts.Friendship
	err := r.db.WithContext(ctx).
		Preload("Requester").Preload("Receiver").
		Where("(requester_id = ? AND receiver_id = ?) OR (requester_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		First(&friendship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("friendship between %s and %s: %w", userA, userB, accounts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch friendship: %w", err)
	}
	return &friendship, nil
}

func (r *gormFriendshipRepository) GetPending(ctx context.Context, requesterID, receiverID string) (*accounts.Friendship, error) {
	var friendship accounts.Friendship
	err := r.db.WithContext(ctx).
		Preload("Requester").Preload("Receiver").
		Where("requester_id = ? AND receiver_id = ? AND status = ?",
			requesterID, receiverID, accounts.FriendshipStatusPending).
		First(&friendship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("pending friendship: %w", accounts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch friendship: %w", err)
	}
	return &friendship, nil
}

func (r *gormFriendshipRepository) ListPendingForReceiver(ctx context.Context, receiverID string) ([]*accounts.Friendship, error) {
	var friendships []*accounts.Friendship
	err := r.db.WithContext(ctx).
		Preload("Requester").
		Where("receiver_id = ? AND status = ?", receiverID, accounts.FriendshipStatusPending).
		Order("created_at DESC").
		Find(&friendships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending friendships: %w", err)
	}
	return friendships, nil
}

func (r *gormFriendshipRepository) ListAcceptedForUser(ctx context.Context, userID string) ([]*accounts.Friendship, error) {
	var friendships []*accounts.Friendship
	err := r.db.WithContext(ctx).
		Preload("Requester").Preload("Receiver").
		Where("(requester_id = ? OR receiver_id = ?) AND status = ?",
			userID, userID, accounts.FriendshipStatusAccepted).
		Order("updated_at DESC").
		Find(&friendships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}
	return friendships, nil
}

func (r *gormFriendshipRepository) UpdateByID(ctx context.Context, friendship *accounts.Friendship) error {
	if err := r.db.WithContext(ctx).Save(friendship).Error; err != nil {
		return fmt.Errorf("failed to update friendship: %w", err)
	}

	r.logger.Info("Updated friendship with id ", friendship.ID)
	return nil
}

func (r *gormFriendshipRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&accounts.Friendship{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete friendship: %w", err)
	}

	r.logger.Info("Deleted friendship with id ", id)
	return nil
}

func (r *gormFriendshipRepository) DeleteByPair(ctx context.Context, userA, userB string) error {
	err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND receiver_id = ?) OR (requester_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Delete(&accounts.Friendship{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete friendship: %w", err)
	}
	return nil
}

func (r *gormFriendshipRepository) CountAcceptedForUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&accounts.Friendship{}).
		Where("(requester_id = ? OR receiver_id = ?) AND status = ?",
			userID, userID, accounts.FriendshipStatusAccepted).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count friendships: %w", err)
	}
	return count, nil
}

func (r *gormFriendshipRepository) ListLinkedUserIDs(ctx context.Context, userID string) ([]string, error) {
	return r.listUserIDs(ctx, userID, "")
}

func (r *gormFriendshipRepository) ListFriendIDs(ctx context.Context, userID string) ([]string, error) {
	return r.listUserIDs(ctx, userID, accounts.FriendshipStatusAccepted)
}

// listUserIDs collects the opposite side of every friendship row that
// involves userID, optionally restricted to one status.
func (r *gormFriendshipRepository) listUserIDs(ctx context.Context, userID, status string) ([]string, error) {
	var friendships []*accounts.Friendship
	dbQuery := r.db.WithContext(ctx).Model(&accounts.Friendship{}).
		Where("requester_id = ? OR receiver_id = ?", userID, userID)
	if status != "" {
		dbQuery = dbQuery.Where("status = ?", status)
	}
	if err := dbQuery.Find(&friendships).Error; err != nil {
		return nil, fmt.Errorf("failed to list linked users: %w", err)
	}

	ids := make([]string, 0, len(friendships))
	for _, f := range friendships {
		ids = append(ids, f.OtherSide(userID))
	}
	return ids, nil
}
