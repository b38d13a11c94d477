package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/chat"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormChatRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormChatRepository creates a new GORM-based ChatRepository implementation
func NewGormChatRepository(db *gorm.DB, logger logger.Logger) (chat.ChatRepository, error) {
	return &gormChatRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormChatRepository) CreateConversation(ctx context.Context, conversation *chat.Conversation) error {
	if err := r.db.WithContext(ctx).Create(conversation).Error; err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}

	r.logger.Info("Created conversation with id ", conversation.ID)
	return nil
}

func (r *gormChatRepository) GetConversationByID(ctx context.Context, conversationID uint) (*chat.Conversation, error) {
	var conversation chat.Conversation
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Preload("LastMessage").
		First(&conversation, conversationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("conversation %d: %w", conversationID, chat.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	return &conversation, nil
}

func (r *gormChatRepository) GetConversationByPair(ctx context.Context, userA, userB string) (*chat.Conversation, error) {
	// Find the conversation both users participate in via the join table.
	var conversationID uint
	err := r.db.WithContext(ctx).
		Table("conversation_participants").
		Select("conversation_id").
		Where("user_id IN ?", []string{userA, userB}).
		Group("conversation_id").
		Having("COUNT(DISTINCT user_id) = 2").
		Limit(1).
		Scan(&conversationID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look up conversation: %w", err)
	}
	if conversationID == 0 {
		return nil, fmt.Errorf("conversation between %s and %s: %w", userA, userB, chat.ErrNotFound)
	}

	return r.GetConversationByID(ctx, conversationID)
}

func (r *gormChatRepository) ListConversationsForUser(ctx context.Context, userID string) ([]*chat.Conversation, error) {
	var conversations []*chat.Conversation
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Preload("LastMessage").
		Joins("JOIN conversation_participants ON conversation_participants.conversation_id = conversations.id").
		Where("conversation_participants.user_id = ?", userID).
		Order("conversations.updated_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

func (r *gormChatRepository) UpdateConversation(ctx context.Context, conversation *chat.Conversation) error {
	err := r.db.WithContext(ctx).Model(&chat.Conversation{}).
		Where("id = ?", conversation.ID).
		Updates(map[string]interface{}{
			"last_message_id": conversation.LastMessageID,
			"updated_at":      time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update conversation: %w", err)
	}
	return nil
}

func (r *gormChatRepository) DeleteConversationByID(ctx context.Context, conversationID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var messageIDs []uint
		err := tx.Model(&chat.Message{}).
			Where("conversation_id = ?", conversationID).
			Pluck("id", &messageIDs).Error
		if err != nil {
			return err
		}
		if len(messageIDs) > 0 {
			if err := tx.Where("message_id IN ?", messageIDs).Delete(&chat.MessageReadReceipt{}).Error; err != nil {
				return err
			}
		}
		// Clear the last message pointer before deleting the messages.
		if err := tx.Model(&chat.Conversation{}).
			Where("id = ?", conversationID).
			Update("last_message_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("conversation_id = ?", conversationID).Delete(&chat.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM conversation_participants WHERE conversation_id = ?", conversationID).Error; err != nil {
			return err
		}
		return tx.Delete(&chat.Conversation{}, conversationID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}

	r.logger.Info("Deleted conversation with id ", conversationID)
	return nil
}

func (r *gormChatRepository) CreateMessage(ctx context.Context, message *chat.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *gormChatRepository) GetMessageByID(ctx context.Context, messageID uint) (*chat.Message, error) {
	var message chat.Message
	err := r.db.WithContext(ctx).
		Preload("Sender").
		First(&message, messageID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("message %d: %w", messageID, chat.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch message: %w", err)
	}
	return &message, nil
}

func (r *gormChatRepository) ListMessages(ctx context.Context, conversationID uint, page, pageSize int) ([]*chat.Message, int64, error) {
	dbQuery := r.db.WithContext(ctx).Model(&chat.Message{}).
		Where("conversation_id = ?", conversationID)

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	var messages []*chat.Message
	err := dbQuery.
		Preload("Sender").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&messages).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch messages: %w", err)
	}
	return messages, total, nil
}

func (r *gormChatRepository) MarkMessagesRead(ctx context.Context, conversationID uint, readerID string) ([]uint, error) {
	var ids []uint
	now := time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&chat.Message{}).
			Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, readerID, false).
			Pluck("id", &ids).Error
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		err = tx.Model(&chat.Message{}).
			Where("id IN ?", ids).
			Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
		if err != nil {
			return err
		}

		receipts := make([]chat.MessageReadReceipt, 0, len(ids))
		for _, id := range ids {
			receipts = append(receipts, chat.MessageReadReceipt{
				MessageID: id,
				ReaderID:  readerID,
				ReadAt:    now,
			})
		}
		return tx.Create(&receipts).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark messages read: %w", err)
	}
	return ids, nil
}

func (r *gormChatRepository) MarkMessageRead(ctx context.Context, messageID uint, readerID string) error {
	now := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&chat.Message{}).
			Where("id = ? AND is_read = ?", messageID, false).
			Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
		if err != nil {
			return err
		}
		return tx.Create(&chat.MessageReadReceipt{
			MessageID: messageID,
			ReaderID:  readerID,
			ReadAt:    now,
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return nil
}

func (r *gormChatRepository) CountUnread(ctx context.Context, conversationID uint, readerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&chat.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, readerID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

func (r *gormChatRepository) CountUnreadForUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&chat.Message{}).
		Joins("JOIN conversation_participants ON conversation_participants.conversation_id = messages.conversation_id").
		Where("conversation_participants.user_id = ? AND messages.sender_id <> ? AND messages.is_read = ?",
			userID, userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

func (r *gormChatRepository) CreateGlobalMessage(ctx context.Context, message *chat.GlobalChatMessage) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create global message: %w", err)
	}
	return nil
}

func (r *gormChatRepository) ListGlobalMessages(ctx context.Context, limit int) ([]*chat.GlobalChatMessage, error) {
	var messages []*chat.GlobalChatMessage
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch global messages: %w", err)
	}
	return messages, nil
}
