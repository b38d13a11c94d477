package social

import (
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
)

// StoryTTL is how long a story stays visible after creation.
const StoryTTL = 24 * time.Hour

// Story is an ephemeral piece of content that expires after StoryTTL.
type Story struct {
	ID        uint          `gorm:"primaryKey"`
	AuthorID  string        `gorm:"not null;index;type:uuid"`
	Author    accounts.User `gorm:"foreignKey:AuthorID"`
	Content   string        `gorm:"type:text"`
	Privacy   string        `gorm:"not null;type:varchar(10);default:friends"`
	Media     []StoryMedia  `gorm:"foreignKey:StoryID;constraint:OnDelete:CASCADE"`
	ViewCount int64         `gorm:"-"`
	Viewed    bool          `gorm:"-"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null;index"`
}

// IsExpired reports whether the story is past its expiry.
func (s *Story) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// StoryMedia is an image or video attached to a story.
type StoryMedia struct {
	ID        uint   `gorm:"primaryKey"`
	StoryID   uint   `gorm:"not null;index"`
	MediaURL  string `gorm:"not null;type:varchar(500)"`
	MediaType string `gorm:"not null;type:varchar(10)"`
	CreatedAt time.Time
}

// StoryView records that a viewer has seen a story, once.
type StoryView struct {
	ID        uint          `gorm:"primaryKey"`
	StoryID   uint          `gorm:"not null;uniqueIndex:idx_story_view"`
	ViewerID  string        `gorm:"not null;type:uuid;uniqueIndex:idx_story_view"`
	Viewer    accounts.User `gorm:"foreignKey:ViewerID"`
	CreatedAt time.Time
}
