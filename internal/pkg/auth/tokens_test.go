//go:build unit
// +build unit

package auth

import (
	"testing"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager(t *testing.T) *TokenManager {
	t.Helper()
	manager, err := NewTokenManager(&config.AuthSettings{
		JWTSecret:          "test-secret-test-secret",
		AccessTokenTTLMin:  15,
		RefreshTokenTTLMin: 60,
		OTPValidityMin:     10,
	})
	require.NoError(t, err)
	return manager
}

func TestTokenManager_IssuePair_And_Verify_Success(t *testing.T) {
	manager := newTestTokenManager(t)

	pair, err := manager.IssuePair("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	userID, err := manager.VerifyAccess(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	userID, err = manager.VerifyRefresh(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenManager_Verify_RejectsWrongTokenType(t *testing.T) {
	manager := newTestTokenManager(t)

	pair, err := manager.IssuePair("user-1")
	require.NoError(t, err)

	_, err = manager.VerifyAccess(pair.Refresh)
	assert.Error(t, err)

	_, err = manager.VerifyRefresh(pair.Access)
	assert.Error(t, err)
}

func TestTokenManager_Verify_RejectsForeignSignature(t *testing.T) {
	manager := newTestTokenManager(t)

	other, err := NewTokenManager(&config.AuthSettings{
		JWTSecret:          "another-secret-entirely",
		AccessTokenTTLMin:  15,
		RefreshTokenTTLMin: 60,
	})
	require.NoError(t, err)

	pair, err := other.IssuePair("user-1")
	require.NoError(t, err)

	_, err = manager.VerifyAccess(pair.Access)
	assert.Error(t, err)
}

func TestTokenManager_Verify_RejectsGarbage(t *testing.T) {
	manager := newTestTokenManager(t)

	_, err := manager.VerifyAccess("not-a-token")
	assert.Error(t, err)
}

func TestNewTokenManager_InvalidSettings_Error(t *testing.T) {
	_, err := NewTokenManager(&config.AuthSettings{
		JWTSecret:          "too-short",
		AccessTokenTTLMin:  15,
		RefreshTokenTTLMin: 60,
	})
	assert.Error(t, err)
}

func TestTokenManager_TTLAccessors(t *testing.T) {
	manager := newTestTokenManager(t)

	assert.Equal(t, float64(15*60), manager.AccessTTL().Seconds())
	assert.Equal(t, float64(60*60), manager.RefreshTTL().Seconds())
}
