package testing

import (
	"testing"
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/auth"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/config"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// SetupTestTokenManager returns a token manager with short-lived test settings.
func SetupTestTokenManager(t *testing.T) *auth.TokenManager {
	t.Helper()

	settings := &config.AuthSettings{
		JWTSecret:          "test-secret-test-secret",
		AccessTokenTTLMin:  15,
		RefreshTokenTTLMin: 60,
		OTPValidityMin:     10,
	}

	manager, err := auth.NewTokenManager(settings)
	require.NoError(t, err)
	return manager
}

// CreateTestUser builds a user with sane defaults. The password hash
// corresponds to "password123".
func CreateTestUser(t *testing.T, profileName string) *accounts.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	return &accounts.User{
		ID:           uuid.NewString(),
		Email:        profileName + "@example.com",
		ProfileName:  profileName,
		PasswordHash: hash,
		IsActive:     true,
		DateJoined:   time.Now(),
	}
}
