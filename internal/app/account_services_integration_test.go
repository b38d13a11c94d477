//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/config"

	"github.com/stretchr/testify/require"
)

// registerTestUser registers a user through the account service.
func registerTestUser(t *testing.T, services *TestServices, profileName string) *accounts.User {
	t.Helper()

	user, err := services.AccountService.Register(context.Background(), accounts.RegisterInput{
		Email:       profileName + "@example.com",
		ProfileName: profileName,
		Password:    "password123",
	})
	require.NoError(t, err)
	return user
}

// seedOTP stores a known one-time code for the user.
func seedOTP(t *testing.T, services *TestServices, userID, code string) {
	t.Helper()

	err := services.DBContext.OTPRepo.Create(context.Background(), &accounts.OTP{
		UserID:    userID,
		Code:      code,
		ExpiresAt: time.Now().Add(TestOTPValidity),
	})
	require.NoError(t, err)
}

func TestAccountService_Register_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	user := registerTestUser(t, services, "amelie")
	require.NotEmpty(t, user.ID)
	require.Equal(t, "amelie@example.com", user.Email)
	require.True(t, user.IsActive)
	require.NotEqual(t, "password123", user.PasswordHash, "password must be hashed")
}

func TestAccountService_Register_Fail_DuplicateEmail(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	registerTestUser(t, services, "amelie")

	_, err := services.AccountService.Register(context.Background(), accounts.RegisterInput{
		Email:       "amelie@example.com",
		ProfileName: "amelie2",
		Password:    "password123",
	})
	require.ErrorIs(t, err, accounts.ErrEmailTaken)
}

func TestAccountService_Register_Fail_DuplicateProfileName(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	registerTestUser(t, services, "amelie")

	_, err := services.AccountService.Register(context.Background(), accounts.RegisterInput{
		Email:       "other@example.com",
		ProfileName: "amelie",
		Password:    "password123",
	})
	require.ErrorIs(t, err, accounts.ErrProfileNameTaken)
}

func TestAccountService_Authenticate_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	registered := registerTestUser(t, services, "amelie")

	user, err := services.AccountService.Authenticate(ctx, "amelie@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.NotNil(t, user.LastLogin)
}

func TestAccountService_Authenticate_Fail_WrongPassword(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	registerTestUser(t, services, "amelie")

	_, err := services.AccountService.Authenticate(context.Background(), "amelie@example.com", "not-the-password")
	require.ErrorIs(t, err, accounts.ErrInvalidCredentials)
}

func TestAccountService_ChangePassword_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := registerTestUser(t, services, "amelie")
	seedOTP(t, services, user.ID, "123456")

	err := services.AccountService.ChangePassword(ctx, user.ID, "password123", "newpassword456", "123456")
	require.NoError(t, err)

	_, err = services.AccountService.Authenticate(ctx, "amelie@example.com", "newpassword456")
	require.NoError(t, err)

	_, err = services.AccountService.Authenticate(ctx, "amelie@example.com", "password123")
	require.ErrorIs(t, err, accounts.ErrInvalidCredentials)
}

func TestAccountService_ChangePassword_Fail_InvalidOTP(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	user := registerTestUser(t, services, "amelie")
	seedOTP(t, services, user.ID, "123456")

	err := services.AccountService.ChangePassword(context.Background(), user.ID, "password123", "newpassword456", "000000")
	require.ErrorIs(t, err, accounts.ErrInvalidOTP)
}

func TestAccountService_ChangePassword_Fail_CodeBurnedAfterUse(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := registerTestUser(t, services, "amelie")
	seedOTP(t, services, user.ID, "123456")

	require.NoError(t, services.AccountService.ChangePassword(ctx, user.ID, "password123", "secondpass789", "123456"))

	err := services.AccountService.ChangePassword(ctx, user.ID, "secondpass789", "thirdpass000", "123456")
	require.ErrorIs(t, err, accounts.ErrInvalidOTP)
}

func TestAccountService_GetProfile_Counters(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := registerTestUser(t, services, "amelie")

	profile, err := services.AccountService.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, profile.User.ID)
	require.Zero(t, profile.PostCount)
	require.Zero(t, profile.FriendCount)
}

func TestAccountService_GetOtherProfile_Fail_Blocked(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	require.NoError(t, services.BlockService.Block(ctx, bruno.ID, amelie.ID))

	_, err := services.AccountService.GetOtherProfile(ctx, amelie.ID, bruno.ID)
	require.ErrorIs(t, err, accounts.ErrNotFound)
}

func TestAccountService_ToggleProfileLock(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := registerTestUser(t, services, "amelie")

	locked, err := services.AccountService.ToggleProfileLock(ctx, user.ID)
	require.NoError(t, err)
	require.True(t, locked)

	locked, err = services.AccountService.ToggleProfileLock(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, locked)
}

func TestProfileItemService_Work_CRUD(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user := registerTestUser(t, services, "amelie")

	work, err := services.ProfileItemService.CreateWork(ctx, user.ID, accounts.ProfileItemInput{
		Company:  "Kreyol Media",
		Position: "Editor",
	})
	require.NoError(t, err)
	require.NotZero(t, work.ID)

	updated, err := services.ProfileItemService.UpdateWork(ctx, user.ID, work.ID, accounts.ProfileItemInput{
		Company:  "Kreyol Media",
		Position: "Senior Editor",
	})
	require.NoError(t, err)
	require.Equal(t, "Senior Editor", updated.Position)

	works, err := services.ProfileItemService.ListWorks(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, works, 1)

	require.NoError(t, services.ProfileItemService.DeleteWork(ctx, user.ID, work.ID))

	works, err = services.ProfileItemService.ListWorks(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, works)
}

func TestProfileItemService_DeleteWork_Fail_NotOwner(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	work, err := services.ProfileItemService.CreateWork(ctx, amelie.ID, accounts.ProfileItemInput{Company: "Kreyol Media"})
	require.NoError(t, err)

	err = services.ProfileItemService.DeleteWork(ctx, bruno.ID, work.ID)
	require.ErrorIs(t, err, accounts.ErrForbidden)
}
