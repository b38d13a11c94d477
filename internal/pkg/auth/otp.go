package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTPCode returns a random 6-digit one-time code.
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
