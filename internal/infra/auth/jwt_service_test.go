package auth

import (
	"testing"

	"quill/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Each token validates only against its own kind.
	gotUserID, err := jwtService.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotUserID)

	gotUserID, err = jwtService.ValidateRefreshToken(refreshToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotUserID)
}

func TestJWTService_RejectsCrossTokenUse(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New())
	assert.NoError(t, err)

	// An access token must not pass refresh validation and vice versa: the
	// secrets differ, so the signature check already fails.
	_, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	_, err = jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-access"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_HashTokenIsStable(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	hash := jwtService.HashToken("some-token")
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "some-token", hash)
	assert.Equal(t, hash, jwtService.HashToken("some-token"))
	assert.NotEqual(t, hash, jwtService.HashToken("other-token"))
}
