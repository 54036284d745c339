package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zaer/hr-service/internal/auth"
	"github.com/zaer/hr-service/internal/config"
	"github.com/zaer/hr-service/internal/repository/repotest"
	apperrors "github.com/zaer/hr-service/pkg/util"
)

const testSecret = "service-test-secret"

func newAuthService() (*AuthService, *repotest.Accounts) {
	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             testSecret,
		AccessTokenTTLMinutes: 5,
		BcryptCost:            bcrypt.MinCost,
	}}
	accounts := repotest.NewAccounts()
	return NewAuthService(cfg, accounts), accounts
}

func TestCreateAccount(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	account, err := svc.CreateAccount(ctx, AccountInput{Username: " HR.Admin ", Password: "s3cret-pass", IsSuperuser: true})
	require.NoError(t, err)
	assert.Equal(t, "hr.admin", account.Username)
	assert.True(t, account.IsSuperuser)
	assert.True(t, account.IsStaff)
	assert.True(t, account.IsActive)
	assert.NotEqual(t, "s3cret-pass", account.PasswordHash)

	_, err = svc.CreateAccount(ctx, AccountInput{Username: "hr.admin", Password: "another-pass"})
	requireDomainError(t, err, http.StatusBadRequest, apperrors.IntegrityMessage)

	_, err = svc.CreateAccount(ctx, AccountInput{Username: "clerk", Password: "short"})
	de := requireDomainError(t, err, http.StatusBadRequest, "invalid payload")
	assert.Contains(t, de.Details, "password")
}

func TestLoginIssuesTokenWithRoleClaims(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()
	created, err := svc.CreateAccount(ctx, AccountInput{Username: "clerk", Password: "clerk-password", IsStaff: true})
	require.NoError(t, err)

	account, token, err := svc.Login(ctx, "CLERK", "clerk-password")
	require.NoError(t, err)
	assert.Equal(t, created.ID, account.ID)

	claims, err := auth.NewTokenManager(testSecret, 5).ParseToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.Subject)
	require.NotNil(t, claims.IsStaff)
	require.NotNil(t, claims.IsSuperuser)
	assert.True(t, *claims.IsStaff)
	assert.False(t, *claims.IsSuperuser)
	assert.True(t, token.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestLoginFailures(t *testing.T) {
	svc, accounts := newAuthService()
	ctx := context.Background()
	created, err := svc.CreateAccount(ctx, AccountInput{Username: "clerk", Password: "clerk-password"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "clerk", "wrong-password")
	requireDomainError(t, err, http.StatusUnauthorized, "invalid credentials")

	_, _, err = svc.Login(ctx, "nobody", "clerk-password")
	requireDomainError(t, err, http.StatusUnauthorized, "invalid credentials")

	created.IsActive = false
	require.NoError(t, accounts.Update(ctx, created))
	_, _, err = svc.Login(ctx, "clerk", "clerk-password")
	requireDomainError(t, err, http.StatusUnauthorized, "inactive account")

	_, err = svc.IssueToken(ctx, "clerk")
	requireDomainError(t, err, http.StatusUnauthorized, "inactive account")
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()
	created, err := svc.CreateAccount(ctx, AccountInput{Username: "clerk", Password: "clerk-password"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, created.ID, "wrong-password", "new-password")
	requireDomainError(t, err, http.StatusUnauthorized, "invalid credentials")

	err = svc.ChangePassword(ctx, created.ID, "clerk-password", "short")
	requireDomainError(t, err, http.StatusBadRequest, "invalid payload")

	require.NoError(t, svc.ChangePassword(ctx, created.ID, "clerk-password", "new-password"))
	_, _, err = svc.Login(ctx, "clerk", "new-password")
	require.NoError(t, err)
	_, _, err = svc.Login(ctx, "clerk", "clerk-password")
	requireDomainError(t, err, http.StatusUnauthorized, "invalid credentials")
}

func TestLoginUpgradesPasswordCost(t *testing.T) {
	svc, accounts := newAuthService()
	ctx := context.Background()
	created, err := svc.CreateAccount(ctx, AccountInput{Username: "clerk", Password: "clerk-password"})
	require.NoError(t, err)

	stronger := NewAuthService(config.Config{Auth: config.AuthConfig{
		JWTSecret:             testSecret,
		AccessTokenTTLMinutes: 5,
		BcryptCost:            bcrypt.MinCost + 1,
	}}, accounts)
	_, _, err = stronger.Login(ctx, "clerk", "clerk-password")
	require.NoError(t, err)

	stored, err := accounts.GetByID(ctx, created.ID)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(stored.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)

	_, _, err = svc.Login(ctx, "clerk", "clerk-password")
	assert.NoError(t, err)
}
