// Package crypt provides the bcrypt implementation of the password hashing port.
package crypt

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt at the default cost.
// The zero value is ready to use.
type BcryptHasher struct{}

// NewBcryptHasher creates a password hasher backed by bcrypt.
func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{}
}

// Hash derives a salted bcrypt hash from the plaintext password.
func (h BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares a stored hash against a plaintext candidate.
// Returns an error when they do not match.
func (h BcryptHasher) Verify(hash, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
}
