//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/chat"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/livestream"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/shop"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/config"
	pkgTesting "github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB               *gorm.DB
	UserRepo         accounts.UserRepository
	FriendshipRepo   accounts.FriendshipRepository
	OTPRepo          accounts.OTPRepository
	ProfileRepo      accounts.ProfileRepository
	ContactRepo      accounts.ContactRepository
	PostRepo         social.PostRepository
	CommentRepo      social.CommentRepository
	StoryRepo        social.StoryRepository
	SocietyRepo      social.SocietyRepository
	BlockRepo        social.BlockRepository
	NotificationRepo social.NotificationRepository
	ChatRepo         chat.ChatRepository
	CategoryRepo     shop.CategoryRepository
	ProductRepo      shop.ProductRepository
	CartRepo         shop.CartRepository
	OrderRepo        shop.OrderRepository
	StreamRepo       livestream.StreamRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = Migrate(db)
	require.NoError(t, err, "Failed to migrate schema")

	log := pkgTesting.SetupTestLogger(t)

	tc := &TestContext{DB: db}

	tc.UserRepo, err = NewGormUserRepository(db, log)
	require.NoError(t, err)
	tc.FriendshipRepo, err = NewGormFriendshipRepository(db, log)
	require.NoError(t, err)
	tc.OTPRepo, err = NewGormOTPRepository(db, log)
	require.NoError(t, err)
	tc.ProfileRepo, err = NewGormProfileRepository(db, log)
	require.NoError(t, err)
	tc.ContactRepo, err = NewGormContactRepository(db, log)
	require.NoError(t, err)
	tc.PostRepo, err = NewGormPostRepository(db, log)
	require.NoError(t, err)
	tc.CommentRepo, err = NewGormCommentRepository(db, log)
	require.NoError(t, err)
	tc.StoryRepo, err = NewGormStoryRepository(db, log)
	require.NoError(t, err)
	tc.SocietyRepo, err = NewGormSocietyRepository(db, log)
	require.NoError(t, err)
	tc.BlockRepo, err = NewGormBlockRepository(db, log)
	require.NoError(t, err)
	tc.NotificationRepo, err = NewGormNotificationRepository(db, log)
	require.NoError(t, err)
	tc.ChatRepo, err = NewGormChatRepository(db, log)
	require.NoError(t, err)
	tc.CategoryRepo, err = NewGormCategoryRepository(db, log)
	require.NoError(t, err)
	tc.ProductRepo, err = NewGormProductRepository(db, log)
	require.NoError(t, err)
	tc.CartRepo, err = NewGormCartRepository(db, log)
	require.NoError(t, err)
	tc.OrderRepo, err = NewGormOrderRepository(db, log)
	require.NoError(t, err)
	tc.StreamRepo, err = NewGormStreamRepository(db, log)
	require.NoError(t, err)

	return tc
}

// SeedTestUser stores a user built by the shared test helper.
func SeedTestUser(t *testing.T, tc *TestContext, profileName string) *accounts.User {
	t.Helper()

	user := pkgTesting.CreateTestUser(t, profileName)
	require.NoError(t, tc.UserRepo.Create(context.Background(), user))
	return user
}
