package livestream

import (
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
)

// Stream statuses
const (
	StreamStatusPreparing = "preparing"
	StreamStatusLive      = "live"
	StreamStatusEnded     = "ended"
)

// Stream is a live broadcast backed by an ingest channel. The stream
// key is only ever shown to the owner.
type Stream struct {
	ID          uint          `gorm:"primaryKey"`
	OwnerID     string        `gorm:"not null;index;type:uuid"`
	Owner       accounts.User `gorm:"foreignKey:OwnerID"`
	Title       string        `gorm:"not null;type:varchar(255)"`
	Description string        `gorm:"type:text"`
	Status      string        `gorm:"not null;type:varchar(10);default:preparing;index"`
	ChannelARN  string        `gorm:"type:varchar(255)"`
	IngestURL   string        `gorm:"type:varchar(500)"`
	PlaybackURL string        `gorm:"type:varchar(500)"`
	StreamKey   string        `gorm:"type:varchar(255)" json:"-"`
	ViewerCount int64         `gorm:"-"`
	PeakViewers int64         `gorm:"not null;default:0"`
	StartedAt   *time.Time
	EndedAt     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StreamComment is a chat message on a live stream.
type StreamComment struct {
	ID        uint          `gorm:"primaryKey"`
	StreamID  uint          `gorm:"not null;index"`
	AuthorID  string        `gorm:"not null;type:uuid"`
	Author    accounts.User `gorm:"foreignKey:AuthorID"`
	Content   string        `gorm:"not null;type:text"`
	CreatedAt time.Time
}

// StreamView records a viewer on a stream, once per stream. LeftAt is
// nil while the viewer is watching.
type StreamView struct {
	ID       uint   `gorm:"primaryKey"`
	StreamID uint   `gorm:"not null;uniqueIndex:idx_stream_view"`
	ViewerID string `gorm:"not null;type:uuid;uniqueIndex:idx_stream_view"`
	JoinedAt time.Time
	LeftAt   *time.Time
}
