package service

import (
	"context"
	"errors"
	"time"

	"github.com/zaer/hr-service/internal/auth"
	"github.com/zaer/hr-service/internal/config"
	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/repository"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

const minPasswordLen = 8

// AccountInput carries the fields of a new login account.
type AccountInput struct {
	Username    string
	Password    string
	IsStaff     bool
	IsSuperuser bool
}

// IssuedToken is a signed access token.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService coordinates account creation and login flows.
type AuthService struct {
	accounts   repository.AccountRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, accounts repository.AccountRepository) *AuthService {
	return &AuthService{
		accounts:   accounts,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// CreateAccount stores a new active account.
func (s *AuthService) CreateAccount(ctx context.Context, in AccountInput) (*domain.Account, error) {
	username := normalize(in.Username)
	fields := fieldErrors{}
	fields.text("username", username, 150)
	fields.check(len(in.Password) >= minPasswordLen, "password", "must be at least 8 characters")
	if err := fields.err(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	account := &domain.Account{
		Username:     username,
		PasswordHash: hash,
		IsStaff:      in.IsStaff || in.IsSuperuser,
		IsSuperuser:  in.IsSuperuser,
		IsActive:     true,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, apperrors.MapError(err)
	}
	return account, nil
}

// Login verifies credentials and returns a token carrying the account's role flags.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Account, *IssuedToken, error) {
	account, err := s.accounts.GetByUsername(ctx, normalize(username))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, nil, apperrors.MapError(err)
	}
	if err := s.verify(account, password); err != nil {
		return nil, nil, err
	}
	if !account.IsActive {
		return nil, nil, apperrors.NewUnauthorized("inactive account")
	}
	if auth.NeedsRehash(account.PasswordHash, s.bcryptCost) {
		// The old hash keeps working if the upgrade fails.
		if hash, err := auth.HashPassword(password, s.bcryptCost); err == nil {
			account.PasswordHash = hash
			_ = s.accounts.Update(ctx, account)
		}
	}
	token, err := s.issue(account)
	if err != nil {
		return nil, nil, err
	}
	return account, token, nil
}

// IssueToken signs a token for an existing account without checking its password.
func (s *AuthService) IssueToken(ctx context.Context, username string) (*IssuedToken, error) {
	account, err := s.accounts.GetByUsername(ctx, normalize(username))
	if err != nil {
		return nil, apperrors.MapNotFound(err, "account")
	}
	if !account.IsActive {
		return nil, apperrors.NewUnauthorized("inactive account")
	}
	return s.issue(account)
}

// ChangePassword verifies the current password before storing the new hash.
func (s *AuthService) ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return apperrors.NewValidationError("invalid payload", map[string]any{"new_password": "must be at least 8 characters"})
	}
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return apperrors.MapNotFound(err, "account")
	}
	if err := s.verify(account, currentPassword); err != nil {
		return err
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	account.PasswordHash = hash
	return apperrors.MapNotFound(s.accounts.Update(ctx, account), "account")
}

func (s *AuthService) verify(account *domain.Account, password string) error {
	err := auth.ComparePassword(account.PasswordHash, password)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, auth.ErrPasswordMismatch):
		return apperrors.NewUnauthorized("invalid credentials")
	default:
		return apperrors.NewInternalError(err)
	}
}

func (s *AuthService) issue(account *domain.Account) (*IssuedToken, error) {
	token, exp, err := s.tokenMgr.GenerateToken(account.ID, auth.Grant{
		IsStaff:     account.IsStaff,
		IsSuperuser: account.IsSuperuser,
		IsActive:    account.IsActive,
	})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &IssuedToken{Token: token, ExpiresAt: exp}, nil
}
