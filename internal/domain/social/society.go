package social

import (
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
)

// Society privacy levels
const (
	SocietyPublic  = "public"
	SocietyPrivate = "private"
)

// Society membership roles
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleMember    = "member"
)

// Society membership statuses. Joining a private society creates a
// pending membership until a moderator approves it; rejected requests
// are deleted.
const (
	MembershipPending  = "pending"
	MembershipAccepted = "accepted"
)

// Society is a named group of users with its own post stream.
type Society struct {
	ID          uint          `gorm:"primaryKey"`
	Name        string        `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Description string        `gorm:"type:text"`
	CoverImage  string        `gorm:"type:varchar(500)"`
	Privacy     string        `gorm:"not null;type:varchar(10);default:public"`
	CreatorID   string        `gorm:"not null;index;type:uuid"`
	Creator     accounts.User `gorm:"foreignKey:CreatorID"`
	MemberCount int64         `gorm:"-"`
	Role        string        `gorm:"-"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SocietyMembership binds a user to a society with a role. A user
// joins a society at most once.
type SocietyMembership struct {
	ID        uint          `gorm:"primaryKey"`
	SocietyID uint          `gorm:"not null;uniqueIndex:idx_society_member"`
	UserID    string        `gorm:"not null;type:uuid;uniqueIndex:idx_society_member"`
	User      accounts.User `gorm:"foreignKey:UserID"`
	Role      string        `gorm:"not null;type:varchar(10);default:member"`
	Status    string        `gorm:"not null;type:varchar(10);default:accepted;index"`
	CreatedAt time.Time
}

// IsAccepted reports whether the membership is in effect.
func (m *SocietyMembership) IsAccepted() bool {
	return m.Status == MembershipAccepted
}

// CanModerate reports whether the membership grants post moderation.
func (m *SocietyMembership) CanModerate() bool {
	return m.IsAccepted() && (m.Role == RoleAdmin || m.Role == RoleModerator)
}

// UserBlock records that a blocker no longer wants contact with the
// blocked user. Blocks hide content and profiles in both directions.
type UserBlock struct {
	ID        uint   `gorm:"primaryKey"`
	BlockerID string `gorm:"not null;type:uuid;uniqueIndex:idx_user_block"`
	BlockedID string `gorm:"not null;type:uuid;uniqueIndex:idx_user_block"`
	CreatedAt time.Time
}
