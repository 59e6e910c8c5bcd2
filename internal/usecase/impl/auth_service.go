// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "medify/internal/delivery/context"
	"medify/internal/domain/entity"
	domainerrors "medify/internal/domain/errors"
	"medify/internal/domain/repository"
	"medify/internal/domain/service"
	"medify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hashToken derives the storable SHA-256 hex digest of a raw refresh token.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// Signup orchestrates the complete registration process: validate the
// password, create the account together with its website setup in one
// transaction, then issue the first session.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting account registration", "email", input.Email)

	if input.Password != input.PasswordConfirm {
		return nil, domainerrors.NewFieldError("password", "Password fields didn't match.")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}
	if !entity.BusinessType(input.BusinessType).IsValid() {
		return nil, domainerrors.NewFieldError("business_type", "Business type must be either hospital or pharmacy.")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	var (
		registeredAccount *entity.Account
		setupID           uuid.UUID
		accessToken       string
		refreshTokenStr   string
	)

	// The account, its website setup, and the first session are created
	// within a single database transaction to ensure atomicity.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		setupRepo := repoFactory.WebsiteSetupRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		// 1. Create the account. The unique email constraint is the
		// authoritative duplicate check.
		newAccount := &entity.Account{
			Email:        input.Email,
			Name:         input.Name,
			BusinessType: entity.BusinessType(input.BusinessType),
			PasswordHash: hashedPassword,
		}
		if err := accountRepo.Create(ctx, newAccount); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.NewFieldError("email", "user with this email already exists.")
			}

			return errors.WithStack(err)
		}

		// 2. Create the companion website setup with all defaults.
		newSetup := &entity.WebsiteSetup{AccountID: newAccount.ID}
		if err := setupRepo.Create(ctx, newSetup); err != nil {
			return errors.WithStack(err)
		}

		// 3. Issue the first credential pair and store its session.
		access, refresh, err := srv.tokenService.GenerateTokens(newAccount.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		newRefreshToken := &entity.RefreshToken{
			AccountID: newAccount.ID,
			TokenHash: hashToken(refresh),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}

		registeredAccount = newAccount
		setupID = newSetup.ID
		accessToken = access
		refreshTokenStr = refresh

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", "email", input.Email, "error", err.Error())

		return nil, err
	}
	srv.log(ctx).Info("Account registered successfully", "accountID", registeredAccount.ID)

	return &usecase.SignupOutput{
		Account:        registeredAccount,
		Tokens:         usecase.TokenPair{Access: accessToken, Refresh: refreshTokenStr},
		WebsiteSetupID: setupID,
	}, nil
}

// Login verifies credentials and opens a new session. Unknown email and
// wrong password produce the same error so callers cannot probe for
// registered addresses.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting account login", "email", input.Email)

	var (
		loggedInAccount *entity.Account
		accessToken     string
		refreshTokenStr string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		// 1. Find the account by email.
		account, err := accountRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find account by email")
		}

		// 2. Check the password.
		if !srv.hasher.Check(input.Password, account.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		// 3. Generate new tokens.
		accessToken, refreshTokenStr, err = srv.tokenService.GenerateTokens(account.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		// 4. Securely store the new refresh token.
		newRefreshToken := &entity.RefreshToken{
			AccountID: account.ID,
			TokenHash: hashToken(refreshTokenStr),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}

		loggedInAccount = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, err
	}
	srv.log(ctx).Debug("Account logged in successfully", "accountID", loggedInAccount.ID)

	return &usecase.LoginOutput{
		Account: loggedInAccount,
		Tokens:  usecase.TokenPair{Access: accessToken, Refresh: refreshTokenStr},
	}, nil
}

// RefreshToken rotates a refresh token: the old session is replaced by a new
// one, so a stolen token stops working the moment its owner refreshes.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	var newAccessToken, newRefreshTokenStr string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		// 1. Verify the refresh token still represents a live session.
		tokenHash := hashToken(input.RefreshToken)
		stored, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.ExpiresAt.Before(time.Now()) {
			return domainerrors.ErrRefreshTokenExpired
		}

		// 2. Verify the account still exists.
		account, err := accountRepo.FindByID(ctx, claims.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to find account")
		}

		// 3. Generate new tokens.
		newAccessToken, newRefreshTokenStr, err = srv.tokenService.GenerateTokens(account.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		// 4. Store the new refresh token.
		newRefreshToken := &entity.RefreshToken{
			AccountID: account.ID,
			TokenHash: hashToken(newRefreshTokenStr),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
			return errors.WithStack(err)
		}

		// 5. Delete the old refresh token.
		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			// Log the error but don't fail the transaction, as the caller has a new valid token.
			srv.log(ctx).Warn("Failed to delete old refresh token", "error", err)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh token", "error", err.Error())

		return nil, err
	}

	return &usecase.RefreshTokenOutput{
		Tokens: usecase.TokenPair{Access: newAccessToken, Refresh: newRefreshTokenStr},
	}, nil
}

// Logout invalidates a session by deleting its refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Debug("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", "error", err)
	}

	tokenHash := hashToken(input.RefreshToken)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()
		if err := refreshRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			// Logout is idempotent: deleting an unknown session is fine.
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to delete refresh token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute logout transaction", "error", err)

		return err
	}
	srv.log(ctx).Debug("Successfully logged out")

	return nil
}

// CurrentAccount resolves the caller's own account from its id.
func (srv *authService) CurrentAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to find account")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}
