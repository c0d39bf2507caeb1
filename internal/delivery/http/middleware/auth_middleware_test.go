package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockSvc "quill/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authMiddlewareFixtures holds all test dependencies for auth middleware tests.
type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc),
		tokenSvc:   tokenSvc,
	}
}

func newAuthTestContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

// recordingHandler reports whether the wrapped handler ran and what user ID
// it observed on the context.
func recordingHandler(ran *bool, seen **uuid.UUID) echo.HandlerFunc {
	return func(c echo.Context) error {
		*ran = true
		*seen = OptionalUserID(c)

		return c.JSON(http.StatusOK, map[string]string{"post": "data"})
	}
}

// envelopeCount counts how many response envelopes were written. The contract
// is exactly one per request, whatever the outcome.
func envelopeCount(rec *httptest.ResponseRecorder) int {
	return strings.Count(rec.Body.String(), `"success"`)
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	fx.tokenSvc.EXPECT().ValidateAccessToken("good-token").Return(userID, nil)

	c, rec := newAuthTestContext("Bearer good-token")

	var handlerRan bool
	var seen *uuid.UUID
	err := fx.middleware.Authenticate(recordingHandler(&handlerRan, &seen))(c)

	require.NoError(t, err)
	assert.True(t, handlerRan)
	require.NotNil(t, seen)
	assert.Equal(t, userID, *seen)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, envelopeCount(rec))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("")

	var handlerRan bool
	var seen *uuid.UUID
	err := fx.middleware.Authenticate(recordingHandler(&handlerRan, &seen))(c)

	require.NoError(t, err)
	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, envelopeCount(rec))
	assert.Contains(t, rec.Body.String(), "Authorization header is missing")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("Basic abc")

	var handlerRan bool
	var seen *uuid.UUID
	err := fx.middleware.Authenticate(recordingHandler(&handlerRan, &seen))(c)

	require.NoError(t, err)
	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, envelopeCount(rec))
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
	assert.Contains(t, rec.Body.String(), "Bearer token")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().
		ValidateAccessToken("garbage").
		Return(uuid.Nil, errors.New("token signature is invalid"))

	c, rec := newAuthTestContext("Bearer garbage")

	var handlerRan bool
	var seen *uuid.UUID
	err := fx.middleware.Authenticate(recordingHandler(&handlerRan, &seen))(c)

	require.NoError(t, err)
	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, envelopeCount(rec))
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthMiddleware_AuthenticateOptional_AnonymousPassesThrough(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("")

	var handlerRan bool
	var seen *uuid.UUID
	err := fx.middleware.AuthenticateOptional(recordingHandler(&handlerRan, &seen))(c)

	require.NoError(t, err)
	assert.True(t, handlerRan)
	assert.Nil(t, seen)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, envelopeCount(rec))
}

func TestAuthMiddleware_AuthenticateOptional_ValidTokenIdentifiesViewer(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	fx.tokenSvc.EXPECT().ValidateAccessToken("good-token").Return(userID, nil)

	c, rec := newAuthTestContext("Bearer good-token")

	var handlerRan bool
	var seen *uuid.UUID
	err := fx.middleware.AuthenticateOptional(recordingHandler(&handlerRan, &seen))(c)

	require.NoError(t, err)
	assert.True(t, handlerRan)
	require.NotNil(t, seen)
	assert.Equal(t, userID, *seen)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// A presented-but-invalid token is rejected, not treated as anonymous: the
// handler must not run and the 401 must be the only thing written.
func TestAuthMiddleware_AuthenticateOptional_InvalidTokenRejected(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().
		ValidateAccessToken("garbage").
		Return(uuid.Nil, errors.New("token signature is invalid"))

	c, rec := newAuthTestContext("Bearer garbage")

	var handlerRan bool
	var seen *uuid.UUID
	err := fx.middleware.AuthenticateOptional(recordingHandler(&handlerRan, &seen))(c)

	require.NoError(t, err)
	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, envelopeCount(rec))
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestAuthMiddleware_AuthenticateOptional_NotBearerRejected(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c, rec := newAuthTestContext("Basic abc")

	var handlerRan bool
	var seen *uuid.UUID
	err := fx.middleware.AuthenticateOptional(recordingHandler(&handlerRan, &seen))(c)

	require.NoError(t, err)
	assert.False(t, handlerRan)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, envelopeCount(rec))
}
