package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// is returned when email/password don’t match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// work factor for bcrypt digests.
const hashCost = 10

// uses bcrypt to hash a plaintext password with a random salt.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	return string(bytes), err
}

// compares a bcrypt hash with the plaintext. A malformed digest
// verifies the same way a mismatch does.
func CheckPassword(hash, plain string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	return err == nil
}
