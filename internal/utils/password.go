package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plain-text password using
// the default cost. The resulting string embeds the salt and cost and is
// suitable for direct storage in the users table.
//
// Returns an error if bcrypt rejects the input (e.g. password longer than 72
// bytes).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether the plain-text password matches the stored
// bcrypt hash. A nil error means the password is correct; any error (wrong
// password or malformed hash) means the credentials must be rejected.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
