package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashSecret computes a salted bcrypt hash of secret with the given cost.
// It is used for passwords and for reset tokens alike; the plaintext is
// never stored.
//
// Example usage:
//
//	hash, err := utils.HashSecret("s3cret", bcrypt.DefaultCost)
func HashSecret(secret string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash generation failed: %w", err)
	}

	return string(hash), nil
}

// CompareSecret reports whether secret matches the bcrypt hash.
// An empty or malformed hash never matches.
func CompareSecret(hash, secret string) bool {
	if hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

// RandomHex returns n cryptographically random bytes encoded as a lowercase
// hex string of length 2n.
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
