package social

import (
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
)

// Post privacy levels
const (
	PrivacyPublic  = "public"
	PrivacyFriends = "friends"
	PrivacyPrivate = "private"
)

// Post moderation statuses. Posts outside societies are approved on
// creation; society posts start pending unless the author moderates
// the society.
const (
	PostStatusPending  = "pending"
	PostStatusApproved = "approved"
	PostStatusRejected = "rejected"
)

// Post is a user-authored piece of content, optionally bound to a
// society and optionally sharing another post.
type Post struct {
	ID           uint          `gorm:"primaryKey"`
	AuthorID     string        `gorm:"not null;index;type:uuid"`
	Author       accounts.User `gorm:"foreignKey:AuthorID"`
	Content      string        `gorm:"type:text"`
	Privacy      string        `gorm:"not null;type:varchar(10);default:public"`
	Status       string        `gorm:"not null;type:varchar(10);default:approved"`
	SocietyID    *uint         `gorm:"index"`
	SharedPostID *uint         `gorm:"index"`
	SharedPost   *Post         `gorm:"foreignKey:SharedPostID"`
	Media        []PostMedia   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	LikeCount    int64         `gorm:"-"`
	CommentCount int64         `gorm:"-"`
	ShareCount   int64         `gorm:"-"`
	Liked        bool          `gorm:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PostMedia is an image or video attached to a post.
type PostMedia struct {
	ID        uint   `gorm:"primaryKey"`
	PostID    uint   `gorm:"not null;index"`
	MediaURL  string `gorm:"not null;type:varchar(500)"`
	MediaType string `gorm:"not null;type:varchar(10)"`
	CreatedAt time.Time
}

// PostLike links a user to a post they liked, once.
type PostLike struct {
	ID        uint   `gorm:"primaryKey"`
	PostID    uint   `gorm:"not null;uniqueIndex:idx_post_like"`
	UserID    string `gorm:"not null;type:uuid;uniqueIndex:idx_post_like"`
	CreatedAt time.Time
}

// Comment is a reply on a post. A non-nil ParentID makes it a nested
// reply to another comment on the same post.
type Comment struct {
	ID         uint          `gorm:"primaryKey"`
	PostID     uint          `gorm:"not null;index"`
	AuthorID   string        `gorm:"not null;index;type:uuid"`
	Author     accounts.User `gorm:"foreignKey:AuthorID"`
	ParentID   *uint         `gorm:"index"`
	Content    string        `gorm:"not null;type:text"`
	LikeCount  int64         `gorm:"-"`
	ReplyCount int64         `gorm:"-"`
	Liked      bool          `gorm:"-"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CommentLike links a user to a comment they liked, once.
type CommentLike struct {
	ID        uint   `gorm:"primaryKey"`
	CommentID uint   `gorm:"not null;uniqueIndex:idx_comment_like"`
	UserID    string `gorm:"not null;type:uuid;uniqueIndex:idx_comment_like"`
	CreatedAt time.Time
}
