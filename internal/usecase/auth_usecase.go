// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SendCodeInput defines the data required to request a sign-in code.
type SendCodeInput struct {
	Email string
}

// VerifyCodeInput defines the data required to redeem a sign-in code.
type VerifyCodeInput struct {
	Email string
	Code  string
}

// --- Output DTOs ---

// SessionOutput returns the generated tokens after a successful sign-in or
// token refresh.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AuthUsecase defines the interface for the email sign-in flow.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// SendCode issues a fresh one-time code for the email and delivers it.
	// It does not reveal whether the email belongs to an existing account.
	SendCode(ctx context.Context, input SendCodeInput) error

	// VerifyCode redeems a pending code, creating the user on first sign-in.
	VerifyCode(ctx context.Context, input VerifyCodeInput) (*SessionOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair, rotating
	// the stored session.
	Refresh(ctx context.Context, refreshToken string) (*SessionOutput, error)

	// Logout revokes the session behind the given refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// CurrentUser loads the signed-in user with their profile, if any.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
