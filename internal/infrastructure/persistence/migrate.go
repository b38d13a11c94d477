package persistence

import (
	"fmt"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/chat"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/livestream"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every domain entity.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&accounts.User{},
		&accounts.Location{},
		&accounts.Work{},
		&accounts.Education{},
		&accounts.ExtraEmail{},
		&accounts.ExtraPhoneNumber{},
		&accounts.Friendship{},
		&accounts.OTP{},
		&social.Post{},
		&social.PostMedia{},
		&social.PostLike{},
		&social.Comment{},
		&social.CommentLike{},
		&social.Story{},
		&social.StoryMedia{},
		&social.StoryView{},
		&social.Society{},
		&social.SocietyMembership{},
		&social.UserBlock{},
		&social.Notification{},
		&chat.Conversation{},
		&chat.Message{},
		&chat.GlobalChatMessage{},
		&chat.MessageReadReceipt{},
		&shop.Category{},
		&shop.Product{},
		&shop.ProductImage{},
		&shop.Cart{},
		&shop.CartItem{},
		&shop.Order{},
		&shop.OrderItem{},
		&livestream.Stream{},
		&livestream.StreamComment{},
		&livestream.StreamView{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
