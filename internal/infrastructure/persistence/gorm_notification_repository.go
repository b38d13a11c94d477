package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormNotificationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormNotificationRepository creates a new GORM-based NotificationRepository implementation
func NewGormNotificationRepository(db *gorm.DB, logger logger.Logger) (social.NotificationRepository, error) {
	return &gormNotificationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormNotificationRepository) Create(ctx context.Context, notification *social.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *gormNotificationRepository) GetByID(ctx context.Context, notificationID uint) (*social.Notification, error) {
	var notification social.Notification
	err := r.db.WithContext(ctx).
		Preload("Actor").
		First(&notification, notificationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification %d: %w", notificationID, social.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch notification: %w", err)
	}
	return &notification, nil
}

func (r *gormNotificationRepository) ListByRecipient(ctx context.Context, recipientID string, page, pageSize int) ([]*social.Notification, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&social.Notification{}).
		Where("recipient_id = ?", recipientID)

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var notifications []*social.Notification
	err := dbQuery.
		Preload("Actor").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return notifications, total, nil
}

func (r *gormNotificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&social.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *gormNotificationRepository) MarkRead(ctx context.Context, notificationID uint) error {
	err := r.db.WithContext(ctx).Model(&social.Notification{}).
		Where("id = ?", notificationID).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (r *gormNotificationRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	err := r.db.WithContext(ctx).Model(&social.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (r *gormNotificationRepository) DeleteByID(ctx context.Context, notificationID uint) error {
	if err := r.db.WithContext(ctx).Delete(&social.Notification{}, notificationID).Error; err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}
