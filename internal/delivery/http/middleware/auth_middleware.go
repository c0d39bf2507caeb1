// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"quill/internal/delivery/http/response"
	"quill/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyUserID is the echo context key holding the authenticated user's ID.
const ContextKeyUserID = "userID"

// Extraction failures. Only the Authenticate/AuthenticateOptional wrappers
// write the response, exactly once per request.
var (
	errNoToken      = errors.New("authorization header missing")
	errNotBearer    = errors.New("authorization header is not a bearer token")
	errTokenInvalid = errors.New("access token invalid or expired")
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the user ID on
// the request context. Requests without a valid token are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.extractUser(c)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", unauthorizedMessage(err))
		}

		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}

// AuthenticateOptional validates the bearer token when one is presented but
// lets anonymous requests through. Public post pages use it so authors see
// their own drafts while everyone else gets the published-only view. A
// presented-but-invalid token is still rejected, not downgraded to anonymous.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.extractUser(c)
		switch {
		case err == nil:
			c.Set(ContextKeyUserID, userID)
		case errors.Is(err, errNoToken):
			// anonymous request
		default:
			return response.Unauthorized(c, "TOKEN_INVALID", unauthorizedMessage(err))
		}

		return next(c)
	}
}

// extractUser parses the Authorization header and validates the bearer token.
// It reports failures through the sentinel errors above and never writes to
// the response itself.
func (m *AuthMiddleware) extractUser(c echo.Context) (uuid.UUID, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, errNoToken
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return uuid.Nil, errNotBearer
	}

	userID, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return uuid.Nil, errTokenInvalid
	}

	return userID, nil
}

func unauthorizedMessage(err error) string {
	switch {
	case errors.Is(err, errNoToken):
		return "Authorization header is missing"
	case errors.Is(err, errNotBearer):
		return "Invalid token format, must be Bearer token"
	default:
		return "Invalid or expired token"
	}
}

// UserID reads the authenticated user's ID set by Authenticate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// OptionalUserID reads the user ID as a pointer, nil for anonymous requests.
func OptionalUserID(c echo.Context) *uuid.UUID {
	if userID, ok := UserID(c); ok {
		return &userID
	}

	return nil
}
