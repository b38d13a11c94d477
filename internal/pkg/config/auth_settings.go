package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds the token signing configuration.
type AuthSettings struct {
	JWTSecret          string `yaml:"jwt_secret" validate:"required,min=16"`
	AccessTokenTTLMin  int    `yaml:"access_token_ttl_min" validate:"required,min=1"`
	RefreshTokenTTLMin int    `yaml:"refresh_token_ttl_min" validate:"required,min=1"`
	OTPValidityMin     int    `yaml:"otp_validity_min"`
}

// AccessTokenTTL returns the access token lifetime as a duration.
func (s *AuthSettings) AccessTokenTTL() time.Duration {
	return time.Duration(s.AccessTokenTTLMin) * time.Minute
}

// RefreshTokenTTL returns the refresh token lifetime as a duration.
func (s *AuthSettings) RefreshTokenTTL() time.Duration {
	return time.Duration(s.RefreshTokenTTLMin) * time.Minute
}

// OTPValidity returns the one-time code lifetime, defaulting to 10 minutes.
func (s *AuthSettings) OTPValidity() time.Duration {
	if s.OTPValidityMin <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(s.OTPValidityMin) * time.Minute
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if s.RefreshTokenTTLMin <= s.AccessTokenTTLMin {
		return fmt.Errorf("refresh token ttl must exceed access token ttl")
	}

	return nil
}
