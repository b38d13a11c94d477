package social

import (
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
)

// Notification types
const (
	NotificationLike            = "like"
	NotificationComment         = "comment"
	NotificationReply           = "reply"
	NotificationShare           = "share"
	NotificationFriendRequest   = "friend_request"
	NotificationFriendAccept    = "friend_accept"
	NotificationSocietyJoin     = "society_join"
	NotificationSocietyApproved = "society_approved"
	NotificationSocietyPost     = "society_post"
	NotificationPostApproved    = "post_approved"
	NotificationPostRejected    = "post_rejected"

	NotificationProductApproved = "product_approved"
	NotificationProductRejected = "product_rejected"
	NotificationOrderStatus     = "order_status"
)

// Notification tells a recipient that an actor did something. PostID
// and SocietyID point at the subject when one exists.
type Notification struct {
	ID          uint          `gorm:"primaryKey"`
	RecipientID string        `gorm:"not null;index;type:uuid"`
	ActorID     string        `gorm:"not null;type:uuid"`
	Actor       accounts.User `gorm:"foreignKey:ActorID"`
	Type        string        `gorm:"not null;type:varchar(20)"`
	Message     string        `gorm:"type:varchar(255)"`
	PostID      *uint
	SocietyID   *uint
	IsRead      bool
	CreatedAt   time.Time
}
