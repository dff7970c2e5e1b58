package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the given plaintext password with bcrypt using the
// default cost.
//
// Parameters:
//
//	password - plaintext password to hash
//
// Returns:
//
//	string - the bcrypt hash, safe to persist
//	error  - non-nil if hashing fails (e.g. password longer than 72 bytes)
//
// Example usage:
//
//	hash, err := utils.HashPassword("123456")
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// CheckPassword reports whether the given plaintext password matches the
// stored bcrypt hash.
//
// Parameters:
//
//	hash     - bcrypt hash previously produced by HashPassword
//	password - plaintext candidate to verify
//
// Returns:
//
//	bool - true if the password matches the hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
