// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"quill/config"
	"quill/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the CodeHasher interface using bcrypt.
// Sign-in codes are short-lived, but a database leak should still not expose
// redeemable codes in plaintext.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.CodeHasher interface.
func NewBcryptHasher(cfg *config.Config) service.CodeHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext code using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)

	return string(bytes), err
}

// Check compares a plaintext code with a bcrypt hash.
func (h *bcryptHasher) Check(code, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	// err is nil if the code and hash match.
	return err == nil
}
