package cryptox

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// HashSecret computes HMAC-SHA512 over secret, keyed by salt, and returns the
// digest as lowercase hex. This is the format stored in client records.
func HashSecret(secret, salt string) string {
	mac := hmac.New(sha512.New, []byte(salt))
	mac.Write([]byte(secret))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySecret reports whether presented hashes to hashedSecret under salt.
func VerifySecret(presented, salt, hashedSecret string) bool {
	computed := HashSecret(presented, salt)
	return hmac.Equal([]byte(computed), []byte(hashedSecret))
}
