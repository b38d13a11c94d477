package app

import (
	"context"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"
)

// notificationService implements both the NotificationService and the
// Notifier interfaces: the content services fan out through Notify and
// the API reads back through the rest.
type notificationService struct {
	notificationRepo social.NotificationRepository
	logger           logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(notificationRepo social.NotificationRepository, logger logger.Logger) (social.NotificationService, social.Notifier, error) {
	s := &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
	return s, s, nil
}

func (s *notificationService) Notify(ctx context.Context, notification *social.Notification) error {
	// Self-actions never generate a notification.
	if notification.RecipientID == notification.ActorID {
		return nil
	}
	return s.notificationRepo.Create(ctx, notification)
}

func (s *notificationService) List(ctx context.Context, userID string, page, pageSize int) ([]*social.Notification, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	return s.notificationRepo.ListByRecipient(ctx, userID, page, pageSize)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, userID string, notificationID uint) error {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification.RecipientID != userID {
		return social.ErrForbidden
	}
	return s.notificationRepo.MarkRead(ctx, notificationID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

func (s *notificationService) Delete(ctx context.Context, userID string, notificationID uint) error {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification.RecipientID != userID {
		return social.ErrForbidden
	}
	return s.notificationRepo.DeleteByID(ctx, notificationID)
}

// normalizePage clamps paging parameters to sane defaults.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
