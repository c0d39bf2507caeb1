package auth

import (
	"testing"

	"quill/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("482913")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "482913", hash)

	assert.True(t, hasher.Check("482913", hash))
	assert.False(t, hasher.Check("482914", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("482913", "invalid_hash"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	first, err := hasher.Hash("123456")
	assert.NoError(t, err)
	second, err := hasher.Hash("123456")
	assert.NoError(t, err)

	// Same code, different salt, different hash. Both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("123456", first))
	assert.True(t, hasher.Check("123456", second))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	// Out-of-range or missing cost falls back to the bcrypt default.
	hasher := NewBcryptHasher(&config.Config{})
	hash, err := hasher.Hash("000000")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
