package chat

import (
	"context"
	"errors"
)

// Sentinel errors shared across the chat service.
var (
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFriends     = errors.New("users are not friends")
	ErrEmptyMessage   = errors.New("message content is empty")
	ErrNotParticipant = errors.New("not a conversation participant")
)

// MessageInput carries the content of an outgoing message. At least one
// of Content and FileURL must be set.
type MessageInput struct {
	Content  string
	FileURL  string
	FileType string
}

// ChatService defines private and global messaging.
type ChatService interface {
	// EnsureConversation returns the conversation between the two
	// users, creating it if absent. The pair must be friends and
	// neither may block the other.
	EnsureConversation(ctx context.Context, userID, otherID string) (*Conversation, error)

	// ListConversations returns the user's conversations ordered by
	// most recent activity, with per-conversation unread counts.
	ListConversations(ctx context.Context, userID string) ([]*Conversation, error)

	GetConversation(ctx context.Context, userID string, conversationID uint) (*Conversation, error)

	// DeleteConversation removes the conversation and its messages.
	// Participants only.
	DeleteConversation(ctx context.Context, userID string, conversationID uint) error

	// SendMessage stores a message and bumps the conversation's last
	// message. The sender must be a participant and the message needs
	// content or a file.
	SendMessage(ctx context.Context, userID string, conversationID uint, input MessageInput) (*Message, error)

	// ListMessages returns a page of messages, newest first.
	ListMessages(ctx context.Context, userID string, conversationID uint, page, pageSize int) ([]*Message, int64, error)

	// MarkRead marks all messages sent by the other participant as
	// read and records receipts. It returns the marked message IDs.
	MarkRead(ctx context.Context, userID string, conversationID uint) ([]uint, error)

	// MarkMessageRead marks a single message, sent by the other
	// participant, as read.
	MarkMessageRead(ctx context.Context, userID string, messageID uint) (*Message, error)

	UnreadTotal(ctx context.Context, userID string) (int64, error)

	// SendGlobalMessage stores a message in the shared room.
	SendGlobalMessage(ctx context.Context, userID string, input MessageInput) (*GlobalChatMessage, error)

	// ListGlobalMessages returns recent global messages, newest first.
	ListGlobalMessages(ctx context.Context, limit int) ([]*GlobalChatMessage, error)
}

// ChatRepository defines persistence for conversations and messages.
type ChatRepository interface {
	CreateConversation(ctx context.Context, conversation *Conversation) error
	GetConversationByID(ctx context.Context, conversationID uint) (*Conversation, error)

	// GetConversationByPair returns the conversation both users
	// participate in, if any.
	GetConversationByPair(ctx context.Context, userA, userB string) (*Conversation, error)

	ListConversationsForUser(ctx context.Context, userID string) ([]*Conversation, error)
	UpdateConversation(ctx context.Context, conversation *Conversation) error
	DeleteConversationByID(ctx context.Context, conversationID uint) error

	CreateMessage(ctx context.Context, message *Message) error
	GetMessageByID(ctx context.Context, messageID uint) (*Message, error)
	ListMessages(ctx context.Context, conversationID uint, page, pageSize int) ([]*Message, int64, error)

	// MarkMessageRead marks one message read and writes the receipt.
	MarkMessageRead(ctx context.Context, messageID uint, readerID string) error

	// MarkMessagesRead marks unread messages in the conversation not
	// sent by readerID and writes read receipts. It returns the IDs of
	// the messages it touched.
	MarkMessagesRead(ctx context.Context, conversationID uint, readerID string) ([]uint, error)

	CountUnread(ctx context.Context, conversationID uint, readerID string) (int64, error)
	CountUnreadForUser(ctx context.Context, userID string) (int64, error)

	CreateGlobalMessage(ctx context.Context, message *GlobalChatMessage) error
	ListGlobalMessages(ctx context.Context, limit int) ([]*GlobalChatMessage, error)
}
