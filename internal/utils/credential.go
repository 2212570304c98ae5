package utils

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CheckAdminPassword verifies a submitted password against the configured
// admin credential. A bcrypt hash, when configured, wins over the plaintext
// value; the plaintext path uses a constant-time compare.
func CheckAdminPassword(plain, configured, configuredHash string) bool {
	if configuredHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(configuredHash), []byte(plain)) == nil
	}
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(plain), []byte(configured)) == 1
}
