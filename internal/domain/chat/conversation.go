package chat

import (
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
)

// Conversation is a private chat between two participants. The last
// message pointer keeps the conversation list cheap to render.
type Conversation struct {
	ID            uint            `gorm:"primaryKey"`
	Participants  []accounts.User `gorm:"many2many:conversation_participants"`
	LastMessageID *uint
	LastMessage   *Message `gorm:"foreignKey:LastMessageID"`
	UnreadCount   int64    `gorm:"-"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OtherParticipant returns the participant that is not the given user.
func (c *Conversation) OtherParticipant(userID string) *accounts.User {
	for i := range c.Participants {
		if c.Participants[i].ID != userID {
			return &c.Participants[i]
		}
	}
	return nil
}

// HasParticipant reports whether the user belongs to the conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	for i := range c.Participants {
		if c.Participants[i].ID == userID {
			return true
		}
	}
	return false
}

// Message is a single message inside a conversation. A message carries
// text content, a file attachment, or both.
type Message struct {
	ID             uint          `gorm:"primaryKey"`
	ConversationID uint          `gorm:"not null;index"`
	SenderID       string        `gorm:"not null;type:uuid"`
	Sender         accounts.User `gorm:"foreignKey:SenderID"`
	Content        string        `gorm:"type:text"`
	FileURL        string        `gorm:"type:varchar(500)"`
	FileType       string        `gorm:"type:varchar(50)"`
	IsRead         bool          `gorm:"index"`
	ReadAt         *time.Time
	CreatedAt      time.Time `gorm:"index"`
}

// GlobalChatMessage is a message in the single shared room.
type GlobalChatMessage struct {
	ID        uint          `gorm:"primaryKey"`
	SenderID  string        `gorm:"not null;type:uuid"`
	Sender    accounts.User `gorm:"foreignKey:SenderID"`
	Content   string        `gorm:"type:text"`
	FileURL   string        `gorm:"type:varchar(500)"`
	FileType  string        `gorm:"type:varchar(50)"`
	CreatedAt time.Time     `gorm:"index"`
}

// MessageReadReceipt records when a reader saw a message.
type MessageReadReceipt struct {
	ID        uint   `gorm:"primaryKey"`
	MessageID uint   `gorm:"not null;uniqueIndex:idx_read_receipt"`
	ReaderID  string `gorm:"not null;type:uuid;uniqueIndex:idx_read_receipt"`
	ReadAt    time.Time
}
