//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/chat"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/livestream"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/infrastructure/mail"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/infrastructure/persistence"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/infrastructure/streaming"
	pkgTesting "github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/testing"

	"github.com/stretchr/testify/require"
)

// TestOTPValidity keeps codes valid long enough for any test run.
const TestOTPValidity = 5 * time.Minute

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AccountService     accounts.AccountService
	ProfileItemService accounts.ProfileItemService
	FriendService      accounts.FriendService

	PostService         social.PostService
	CommentService      social.CommentService
	StoryService        social.StoryService
	SocietyService      social.SocietyService
	BlockService        social.BlockService
	NotificationService social.NotificationService

	ChatService chat.ChatService

	CategoryService shop.CategoryService
	ProductService  shop.ProductService
	CartService     shop.CartService
	OrderService    shop.OrderService

	StreamService livestream.StreamService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := pkgTesting.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	mailSender, err := mail.NewLogMailSender(logger)
	require.NoError(t, err, "Failed to create mail sender")

	channelProvider, err := streaming.NewStaticChannelProvider("https://media.test.invalid", logger)
	require.NoError(t, err, "Failed to create channel provider")

	notificationService, notifier, err := NewNotificationService(dbContext.NotificationRepo, logger)
	require.NoError(t, err, "Failed to create NotificationService")

	accountService, err := NewAccountService(
		dbContext.UserRepo,
		dbContext.FriendshipRepo,
		dbContext.OTPRepo,
		dbContext.ProfileRepo,
		dbContext.ContactRepo,
		dbContext.PostRepo,
		dbContext.BlockRepo,
		mailSender,
		TestOTPValidity,
		logger,
	)
	require.NoError(t, err, "Failed to create AccountService")

	profileItemService, err := NewProfileItemService(dbContext.ProfileRepo, logger)
	require.NoError(t, err, "Failed to create ProfileItemService")

	friendService, err := NewFriendService(
		dbContext.FriendshipRepo,
		dbContext.UserRepo,
		dbContext.BlockRepo,
		dbContext.ChatRepo,
		notifier,
		logger,
	)
	require.NoError(t, err, "Failed to create FriendService")

	postService, err := NewPostService(
		dbContext.PostRepo,
		dbContext.SocietyRepo,
		dbContext.FriendshipRepo,
		dbContext.BlockRepo,
		notifier,
		logger,
	)
	require.NoError(t, err, "Failed to create PostService")

	commentService, err := NewCommentService(
		dbContext.CommentRepo,
		dbContext.PostRepo,
		dbContext.SocietyRepo,
		dbContext.FriendshipRepo,
		dbContext.BlockRepo,
		notifier,
		logger,
	)
	require.NoError(t, err, "Failed to create CommentService")

	storyService, err := NewStoryService(
		dbContext.StoryRepo,
		dbContext.FriendshipRepo,
		dbContext.UserRepo,
		dbContext.BlockRepo,
		dbContext.SocietyRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create StoryService")

	societyService, err := NewSocietyService(
		dbContext.SocietyRepo,
		dbContext.PostRepo,
		dbContext.FriendshipRepo,
		dbContext.BlockRepo,
		notifier,
		logger,
	)
	require.NoError(t, err, "Failed to create SocietyService")

	blockService, err := NewBlockService(
		dbContext.BlockRepo,
		dbContext.FriendshipRepo,
		dbContext.UserRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create BlockService")

	chatService, err := NewChatService(
		dbContext.ChatRepo,
		dbContext.UserRepo,
		dbContext.FriendshipRepo,
		dbContext.BlockRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create ChatService")

	categoryService, err := NewCategoryService(dbContext.CategoryRepo, dbContext.UserRepo, logger)
	require.NoError(t, err, "Failed to create CategoryService")

	productService, err := NewProductService(
		dbContext.ProductRepo,
		dbContext.CategoryRepo,
		dbContext.UserRepo,
		notifier,
		logger,
	)
	require.NoError(t, err, "Failed to create ProductService")

	cartService, err := NewCartService(dbContext.CartRepo, dbContext.ProductRepo, logger)
	require.NoError(t, err, "Failed to create CartService")

	orderService, err := NewOrderService(
		dbContext.OrderRepo,
		dbContext.CartRepo,
		dbContext.ProductRepo,
		dbContext.UserRepo,
		notifier,
		logger,
	)
	require.NoError(t, err, "Failed to create OrderService")

	streamService, err := NewStreamService(dbContext.StreamRepo, channelProvider, logger)
	require.NoError(t, err, "Failed to create StreamService")

	return &TestServices{
		AccountService:      accountService,
		ProfileItemService:  profileItemService,
		FriendService:       friendService,
		PostService:         postService,
		CommentService:      commentService,
		StoryService:        storyService,
		SocietyService:      societyService,
		BlockService:        blockService,
		NotificationService: notificationService,
		ChatService:         chatService,
		CategoryService:     categoryService,
		ProductService:      productService,
		CartService:         cartService,
		OrderService:        orderService,
		StreamService:       streamService,
		DBContext:           dbContext,
	}
}
