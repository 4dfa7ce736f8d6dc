package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch = errors.New("password does not match")
)

// MinPasswordLength is the floor enforced at registration.
const MinPasswordLength = 8

// Cost 12 keeps a hash in the hundreds of milliseconds, slow enough to
// blunt offline guessing without making login feel sluggish.
const hashCost = 12

// HashPassword returns the bcrypt hash of a password. The length floor is
// enforced here as well, so a caller cannot hash something the register
// validation would have rejected.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword compares a stored hash against a login attempt.
func VerifyPassword(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

// IsPasswordValid reports whether a password meets the length floor.
func IsPasswordValid(password string) bool {
	return len(password) >= MinPasswordLength
}
