package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// SaltLength is the number of hex characters in a provisioning salt.
const SaltLength = 32

// GenerateSecret returns exactly length hex characters of cryptographically
// secure random material. It reads ceil(length/2) bytes and truncates the hex
// rendering, so for odd lengths the final nibble of the last byte is dropped.
func GenerateSecret(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("secret length must be positive, got %d", length)
	}

	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(buf)[:length], nil
}

// MustGenerateSecret is like GenerateSecret but panics on error.
// Token issuance uses this: a broken random source is not something to retry.
func MustGenerateSecret(length int) string {
	secret, err := GenerateSecret(length)
	if err != nil {
		panic(fmt.Sprintf("cryptox: failed to generate secret: %v", err))
	}
	return secret
}

// GenerateSalt returns a fresh salt for provisioning a client record.
func GenerateSalt() (string, error) {
	return GenerateSecret(SaltLength)
}
