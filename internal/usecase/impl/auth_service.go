// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"quill/config"
	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const codeDigits = 6

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	loginCodeRepo    repository.LoginCodeRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.CodeHasher
	tokenService     service.TokenService
	mailer           service.CodeMailer
	codeTTL          time.Duration
	maxAttempts      int
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	LoginCodeRepo    repository.LoginCodeRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.CodeHasher
	TokenService     service.TokenService
	Mailer           service.CodeMailer
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	codeTTL := 10 * time.Minute
	maxAttempts := 5
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.CodeTTL > 0 {
			codeTTL = params.Config.Auth.CodeTTL
		}
		if params.Config.Auth.MaxVerifyAttempts > 0 {
			maxAttempts = params.Config.Auth.MaxVerifyAttempts
		}
	}

	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		loginCodeRepo:    params.LoginCodeRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		mailer:           params.Mailer,
		codeTTL:          codeTTL,
		maxAttempts:      maxAttempts,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendCode issues a one-time code and mails it. A fresh request always
// replaces any previous pending code for the email, so only the newest code
// is redeemable. The response never reveals whether an account exists.
func (srv *authService) SendCode(ctx context.Context, input usecase.SendCodeInput) error {
	srv.log(ctx).Info("Issuing sign-in code", slog.String("email", input.Email))

	code, err := generateNumericCode(codeDigits)
	if err != nil {
		return errors.Wrap(err, "failed to generate sign-in code")
	}

	codeHash, err := srv.hasher.Hash(code)
	if err != nil {
		return errors.Wrap(err, "failed to hash sign-in code")
	}

	pending := &entity.LoginCode{
		Email:     input.Email,
		CodeHash:  codeHash,
		ExpiresAt: time.Now().Add(srv.codeTTL),
	}

	if err := srv.loginCodeRepo.Replace(ctx, pending); err != nil {
		srv.log(ctx).Error("Failed to store sign-in code", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to store sign-in code")
	}

	if err := srv.mailer.SendLoginCode(ctx, input.Email, code); err != nil {
		srv.log(ctx).Error("Failed to deliver sign-in code", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to deliver sign-in code")
	}
	srv.log(ctx).Debug("Sign-in code delivered", slog.String("email", input.Email))

	return nil
}

// VerifyCode redeems a pending code. On the first successful sign-in for an
// email a user record is created; either way a new session is opened.
func (srv *authService) VerifyCode(ctx context.Context, input usecase.VerifyCodeInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Verifying sign-in code", slog.String("email", input.Email))

	var signedInUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.consumeCode(ctx, repoFactory.LoginCodeRepo(), input); err != nil {
			return err
		}

		user, err := srv.findOrCreateUser(ctx, repoFactory.UserRepo(), input.Email)
		if err != nil {
			return err
		}
		signedInUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-in code verification failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute code verification transaction")
	}

	output, err := srv.openSession(ctx, signedInUser)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("User signed in", slog.Any("userID", signedInUser.ID))

	return output, nil
}

// consumeCode validates the submitted code against the pending record and
// deletes it on success. Failed checks burn an attempt; too many burns or an
// expired code invalidate the record entirely.
func (srv *authService) consumeCode(ctx context.Context, codeRepo repository.LoginCodeRepository, input usecase.VerifyCodeInput) error {
	pending, err := codeRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrLoginCodeNotFound) {
		return errors.Wrap(domainerrors.ErrCodeInvalid, "no pending code for email")
	}
	if err != nil {
		return errors.Wrap(err, "failed to load pending code")
	}

	if pending.Expired(time.Now()) {
		if err := codeRepo.DeleteByEmail(ctx, input.Email); err != nil {
			return errors.Wrap(err, "failed to discard expired code")
		}

		return errors.Wrap(domainerrors.ErrCodeExpired, "sign-in code expired")
	}

	if !srv.hasher.Check(input.Code, pending.CodeHash) {
		pending.Attempts++
		if pending.Attempts >= srv.maxAttempts {
			if err := codeRepo.DeleteByEmail(ctx, input.Email); err != nil {
				return errors.Wrap(err, "failed to discard exhausted code")
			}

			return errors.Wrap(domainerrors.ErrTooManyAttempts, "verification attempts exhausted")
		}
		if err := codeRepo.Update(ctx, pending); err != nil {
			return errors.Wrap(err, "failed to record failed attempt")
		}

		return errors.Wrap(domainerrors.ErrCodeInvalid, "sign-in code mismatch")
	}

	if err := codeRepo.DeleteByEmail(ctx, input.Email); err != nil {
		return errors.Wrap(err, "failed to consume code")
	}

	return nil
}

func (srv *authService) findOrCreateUser(ctx context.Context, userRepo repository.UserRepository, email string) (*entity.User, error) {
	user, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	srv.log(ctx).Info("First sign-in, creating user", slog.String("email", email))

	newUser := &entity.User{Email: email}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user on first sign-in")
	}

	return newUser, nil
}

// openSession generates a token pair and persists the refresh token hash.
func (srv *authService) openSession(ctx context.Context, user *entity.User) (*usecase.SessionOutput, error) {
	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newRefreshToken := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}

	if err := srv.refreshTokenRepo.Create(ctx, newRefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

// Refresh rotates a session: the presented refresh token is revoked and a new
// token pair is issued in its place.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Attempting to refresh session")

	userID, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token validation failed")
	}

	var (
		sessionUser        *entity.User
		accessToken        string
		refreshTokenString string
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		tokenHash := srv.tokenService.HashToken(refreshToken)
		stored, err := refreshRepo.FindByHash(ctx, tokenHash)
		if err != nil {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or revoked")
		}
		if stored.UserID != userID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token subject mismatch")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for refresh")
		}
		sessionUser = user

		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate rotated tokens")
		}

		if err := refreshRepo.DeleteByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to revoke rotated refresh token")
		}

		rotated := &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(refreshTokenString),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		}

		return errors.Wrap(refreshRepo.Create(ctx, rotated), "failed to store rotated refresh token")
	})
	if err != nil {
		srv.log(ctx).Warn("Session refresh failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh transaction")
	}
	srv.log(ctx).Debug("Session refreshed", slog.Any("userID", sessionUser.ID))

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         sessionUser,
	}, nil
}

// Logout handles the process of invalidating a user's session by deleting their refresh token.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(refreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)

	if err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// CurrentUser loads the signed-in user with their profile preloaded.
func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "user behind token no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}

// generateNumericCode returns a zero-padded random code of the given length.
func generateNumericCode(digits int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return fmt.Sprintf("%0*d", digits, n), nil
}
