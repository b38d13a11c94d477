//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

const validConfigYAML = `
port: "9090"
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  name: test.db
auth:
  jwt_secret: test-secret-test-secret
  access_token_ttl_min: 15
  refresh_token_ttl_min: 60
streaming:
  base_url: https://stream.example.com/live
`

func TestInitializeRestConfig_Success(t *testing.T) {
	path := writeTestConfig(t, validConfigYAML)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "https://stream.example.com/live", cfg.Streaming.BaseURL)
}

func TestInitializeRestConfig_DefaultsPort(t *testing.T) {
	path := writeTestConfig(t, `
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  name: test.db
auth:
  jwt_secret: test-secret-test-secret
  access_token_ttl_min: 15
  refresh_token_ttl_min: 60
streaming:
  base_url: https://stream.example.com/live
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}

func TestInitializeRestConfig_MissingFile_Error(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInitializeRestConfig_MissingStreamingBaseURL_Error(t *testing.T) {
	path := writeTestConfig(t, `
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  name: test.db
auth:
  jwt_secret: test-secret-test-secret
  access_token_ttl_min: 15
  refresh_token_ttl_min: 60
`)

	_, err := InitializeRestConfig(path)
	assert.Error(t, err)
}

func TestAuthSettings_Validate_RefreshMustExceedAccess(t *testing.T) {
	settings := &AuthSettings{
		JWTSecret:          "test-secret-test-secret",
		AccessTokenTTLMin:  60,
		RefreshTokenTTLMin: 60,
	}
	assert.Error(t, settings.Validate())
}

func TestAuthSettings_OTPValidity_DefaultsToTenMinutes(t *testing.T) {
	settings := &AuthSettings{}
	assert.Equal(t, float64(600), settings.OTPValidity().Seconds())
}

func TestDatabaseSettings_Validate_PostgresRequiresDSN(t *testing.T) {
	settings := &DatabaseSettings{Type: PostgresDbType}
	assert.Error(t, settings.Validate())
}

func TestLoggerSettings_Validate_FileLoggerRequiresPath(t *testing.T) {
	settings := &LoggerSettings{
		LogLevel: "info",
		LogType:  "file",
		MaxSize:  10, MaxBackups: 5, MaxAge: 30,
	}
	assert.Error(t, settings.Validate())
}
