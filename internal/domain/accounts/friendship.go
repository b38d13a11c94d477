package accounts

import "time"

// Friendship status constants
const (
	FriendshipStatusPending  = "pending"
	FriendshipStatusAccepted = "accepted"
)

// Friendship status values reported to clients by the status lookup.
const (
	FriendshipNone            = "none"
	FriendshipPendingSent     = "pending_sent"
	FriendshipPendingReceived = "pending_received"
	FriendshipFriends         = "friends"
)

// Friendship links a requester to a receiver. A single row represents
// both the pending request and, once accepted, the friendship itself.
type Friendship struct {
	ID          uint   `gorm:"primaryKey"`
	RequesterID string `gorm:"not null;type:uuid;uniqueIndex:idx_friendship_pair"`
	ReceiverID  string `gorm:"not null;type:uuid;uniqueIndex:idx_friendship_pair"`
	Requester   User   `gorm:"foreignKey:RequesterID"`
	Receiver    User   `gorm:"foreignKey:ReceiverID"`
	Status      string `gorm:"not null;type:varchar(20);default:pending"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Involves reports whether the friendship links the given user.
func (f *Friendship) Involves(userID string) bool {
	return f.RequesterID == userID || f.ReceiverID == userID
}

// OtherSide returns the user ID on the opposite side of the friendship.
func (f *Friendship) OtherSide(userID string) string {
	if f.RequesterID == userID {
		return f.ReceiverID
	}
	return f.RequesterID
}

// OTP is a short-lived one-time code bound to a user.
type OTP struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"not null;index;type:uuid"`
	Code      string `gorm:"not null;type:varchar(6)"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null"`
}

// IsExpired reports whether the code is past its expiry.
func (o *OTP) IsExpired() bool {
	return time.Now().After(o.ExpiresAt)
}
