//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := SeedTestUser(t, tc, "alice")

	fetched, err := tc.UserRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, fetched.Email)
	assert.Equal(t, "alice", fetched.ProfileName)
	assert.True(t, fetched.IsActive)

	byEmail, err := tc.UserRepo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_GetMissingUser(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.UserRepo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}

func TestUserRepository_EmailTaken(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := SeedTestUser(t, tc, "bob")

	taken, err := tc.UserRepo.EmailTaken(ctx, user.Email)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = tc.UserRepo.EmailTaken(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserRepository_Search(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	alice := SeedTestUser(t, tc, "alice-search")
	SeedTestUser(t, tc, "bob-search")

	results, err := tc.UserRepo.Search(ctx, "alice", nil, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, alice.ID, results[0].ID)

	// Excluded IDs drop matching rows.
	results, err = tc.UserRepo.Search(ctx, "search", []string{alice.ID}, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "bob-search", results[0].ProfileName)
}

func TestFriendshipRepository_Lifecycle(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	alice := SeedTestUser(t, tc, "alice-fr")
	bob := SeedTestUser(t, tc, "bob-fr")

	friendship := &accounts.Friendship{
		RequesterID: alice.ID,
		ReceiverID:  bob.ID,
		Status:      accounts.FriendshipStatusPending,
	}
	require.NoError(t, tc.FriendshipRepo.Create(ctx, friendship))

	pending, err := tc.FriendshipRepo.ListPendingForReceiver(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, alice.ID, pending[0].RequesterID)

	// Accept and verify both directions resolve the pair.
	friendship.Status = accounts.FriendshipStatusAccepted
	require.NoError(t, tc.FriendshipRepo.UpdateByID(ctx, friendship))

	pair, err := tc.FriendshipRepo.GetByPair(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, accounts.FriendshipStatusAccepted, pair.Status)

	count, err := tc.FriendshipRepo.CountAcceptedForUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	friendIDs, err := tc.FriendshipRepo.ListFriendIDs(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{alice.ID}, friendIDs)

	require.NoError(t, tc.FriendshipRepo.DeleteByPair(ctx, alice.ID, bob.ID))

	_, err = tc.FriendshipRepo.GetByPair(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}

func TestOTPRepository_CreateAndFetch(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := SeedTestUser(t, tc, "otp-user")

	otp := &accounts.OTP{
		UserID:    user.ID,
		Code:      "123456",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	require.NoError(t, tc.OTPRepo.Create(ctx, otp))

	fetched, err := tc.OTPRepo.GetByUserAndCode(ctx, user.ID, "123456")
	require.NoError(t, err)
	assert.False(t, fetched.IsExpired())

	_, err = tc.OTPRepo.GetByUserAndCode(ctx, user.ID, "999999")
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}
