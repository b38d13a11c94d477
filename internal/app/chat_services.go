package app

import (
	"context"
	"errors"
	"strings"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/chat"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"
)

// chatService implements the ChatService interface
type chatService struct {
	chatRepo       chat.ChatRepository
	userRepo       accounts.UserRepository
	friendshipRepo accounts.FriendshipRepository
	blockRepo      social.BlockRepository
	logger         logger.Logger
}

// NewChatService creates a new instance of ChatService
func NewChatService(
	chatRepo chat.ChatRepository,
	userRepo accounts.UserRepository,
	friendshipRepo accounts.FriendshipRepository,
	blockRepo social.BlockRepository,
	logger logger.Logger,
) (chat.ChatService, error) {
	return &chatService{
		chatRepo:       chatRepo,
		userRepo:       userRepo,
		friendshipRepo: friendshipRepo,
		blockRepo:      blockRepo,
		logger:         logger,
	}, nil
}

func (s *chatService) EnsureConversation(ctx context.Context, userID, otherID string) (*chat.Conversation, error) {
	friendship, err := s.friendshipRepo.GetByPair(ctx, userID, otherID)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil, chat.ErrNotFriends
		}
		return nil, err
	}
	if friendship.Status != accounts.FriendshipStatusAccepted {
		return nil, chat.ErrNotFriends
	}

	blocked, err := s.blockRepo.ExistsEither(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, chat.ErrForbidden
	}

	conversation, err := s.chatRepo.GetConversationByPair(ctx, userID, otherID)
	if err == nil {
		return s.decorate(ctx, userID, conversation)
	}
	if !errors.Is(err, chat.ErrNotFound) {
		return nil, err
	}

	a, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	b, err := s.userRepo.GetByID(ctx, otherID)
	if err != nil {
		return nil, err
	}

	conversation = &chat.Conversation{}
	conversation.Participants = append(conversation.Participants, *a, *b)
	if err := s.chatRepo.CreateConversation(ctx, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

// decorate fills the unread counter for the given reader.
func (s *chatService) decorate(ctx context.Context, userID string, conversation *chat.Conversation) (*chat.Conversation, error) {
	var err error
	if conversation.UnreadCount, err = s.chatRepo.CountUnread(ctx, conversation.ID, userID); err != nil {
		return nil, err
	}
	return conversation, nil
}

func (s *chatService) ListConversations(ctx context.Context, userID string) ([]*chat.Conversation, error) {
	conversations, err := s.chatRepo.ListConversationsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, conversation := range conversations {
		if _, err := s.decorate(ctx, userID, conversation); err != nil {
			return nil, err
		}
	}
	return conversations, nil
}

func (s *chatService) GetConversation(ctx context.Context, userID string, conversationID uint) (*chat.Conversation, error) {
	conversation, err := s.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, chat.ErrNotParticipant
	}
	return s.decorate(ctx, userID, conversation)
}

func (s *chatService) DeleteConversation(ctx context.Context, userID string, conversationID uint) error {
	conversation, err := s.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conversation.HasParticipant(userID) {
		return chat.ErrNotParticipant
	}
	return s.chatRepo.DeleteConversationByID(ctx, conversationID)
}

func (s *chatService) SendMessage(ctx context.Context, userID string, conversationID uint, input chat.MessageInput) (*chat.Message, error) {
	if strings.TrimSpace(input.Content) == "" && input.FileURL == "" {
		return nil, chat.ErrEmptyMessage
	}

	conversation, err := s.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, chat.ErrNotParticipant
	}

	if other := conversation.OtherParticipant(userID); other != nil {
		blocked, err := s.blockRepo.ExistsEither(ctx, userID, other.ID)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, chat.ErrForbidden
		}
	}

	message := &chat.Message{
		ConversationID: conversationID,
		SenderID:       userID,
		Content:        input.Content,
		FileURL:        input.FileURL,
		FileType:       input.FileType,
	}
	if err := s.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	conversation.LastMessageID = &message.ID
	if err := s.chatRepo.UpdateConversation(ctx, conversation); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *chatService) ListMessages(ctx context.Context, userID string, conversationID uint, page, pageSize int) ([]*chat.Message, int64, error) {
	page, pageSize = normalizePage(page, pageSize)

	conversation, err := s.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, 0, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, 0, chat.ErrNotParticipant
	}
	return s.chatRepo.ListMessages(ctx, conversationID, page, pageSize)
}

func (s *chatService) MarkRead(ctx context.Context, userID string, conversationID uint) ([]uint, error) {
	conversation, err := s.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, chat.ErrNotParticipant
	}
	return s.chatRepo.MarkMessagesRead(ctx, conversationID, userID)
}

func (s *chatService) MarkMessageRead(ctx context.Context, userID string, messageID uint) (*chat.Message, error) {
	message, err := s.chatRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	// Senders do not acknowledge their own messages.
	if message.SenderID == userID {
		return nil, chat.ErrForbidden
	}

	conversation, err := s.chatRepo.GetConversationByID(ctx, message.ConversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, chat.ErrNotParticipant
	}

	if !message.IsRead {
		if err := s.chatRepo.MarkMessageRead(ctx, messageID, userID); err != nil {
			return nil, err
		}
	}
	return s.chatRepo.GetMessageByID(ctx, messageID)
}

func (s *chatService) UnreadTotal(ctx context.Context, userID string) (int64, error) {
	return s.chatRepo.CountUnreadForUser(ctx, userID)
}

func (s *chatService) SendGlobalMessage(ctx context.Context, userID string, input chat.MessageInput) (*chat.GlobalChatMessage, error) {
	if strings.TrimSpace(input.Content) == "" && input.FileURL == "" {
		return nil, chat.ErrEmptyMessage
	}

	sender, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	message := &chat.GlobalChatMessage{
		SenderID: userID,
		Content:  input.Content,
		FileURL:  input.FileURL,
		FileType: input.FileType,
	}
	if err := s.chatRepo.CreateGlobalMessage(ctx, message); err != nil {
		return nil, err
	}

	message.Sender = *sender
	return message, nil
}

func (s *chatService) ListGlobalMessages(ctx context.Context, limit int) ([]*chat.GlobalChatMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.chatRepo.ListGlobalMessages(ctx, limit)
}
