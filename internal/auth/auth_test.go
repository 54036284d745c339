package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/zaer/hr-service/pkg/util"
)

const subject = "7f3c4c4e-2d4b-4a8e-9a61-0c0b9d1f5e11"

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	token, expires, err := tm.GenerateToken(subject, Grant{IsStaff: true, IsActive: true})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), expires, time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	require.NotNil(t, claims.IsStaff)
	assert.True(t, *claims.IsStaff)
	require.NotNil(t, claims.IsSuperuser)
	assert.False(t, *claims.IsSuperuser)
	assert.NotEmpty(t, claims.ID)
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	token, _, err := NewTokenManager("one", 5).GenerateToken(subject, Grant{})
	require.NoError(t, err)
	_, err = NewTokenManager("two", 5).ParseToken(token)
	assert.Error(t, err)
}

func TestComparePassword(t *testing.T) {
	hashed, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	assert.NoError(t, ComparePassword(hashed, "s3cret"))
	assert.ErrorIs(t, ComparePassword(hashed, "wrong"), ErrPasswordMismatch)
	assert.Error(t, ComparePassword("not-a-hash", "s3cret"))
	assert.NotErrorIs(t, ComparePassword("not-a-hash", "s3cret"), ErrPasswordMismatch)
}

func TestNeedsRehash(t *testing.T) {
	hashed, err := HashPassword("s3cret", 4)
	require.NoError(t, err)
	assert.False(t, NeedsRehash(hashed, 4))
	assert.True(t, NeedsRehash(hashed, 5))
	assert.True(t, NeedsRehash("not-a-hash", 4))

	defaulted, err := HashPassword("s3cret", 99)
	require.NoError(t, err)
	assert.False(t, NeedsRehash(defaulted, 0))
}

func newGuardedApp(tm *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).SendString(de.Message)
		},
	})
	mw := NewAuthMiddleware(tm)
	ok := func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) }
	app.Get("/any", mw.Handle, RequireAuthenticated(), ok)
	app.Get("/staff", mw.Handle, RequireStaff(), ok)
	app.Get("/super", mw.Handle, RequireSuperuser(), ok)
	return app
}

func signRaw(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestRoleGuards(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	app := newGuardedApp(tm)

	staffToken, _, err := tm.GenerateToken(subject, Grant{IsStaff: true, IsActive: true})
	require.NoError(t, err)
	superToken, _, err := tm.GenerateToken(subject, Grant{IsStaff: true, IsSuperuser: true, IsActive: true})
	require.NoError(t, err)
	inactiveToken, _, err := tm.GenerateToken(subject, Grant{IsStaff: true})
	require.NoError(t, err)
	exp := time.Now().Add(time.Minute).Unix()
	noClaims := signRaw(t, "secret", jwt.MapClaims{"sub": subject, "exp": exp})
	badSubject := signRaw(t, "secret", jwt.MapClaims{"sub": "admin", "exp": exp, "is_staff": true})

	cases := []struct {
		name    string
		path    string
		token   string
		status  int
		message string
	}{
		{"no token", "/any", "", http.StatusUnauthorized, "missing authorization header"},
		{"garbage token", "/any", "abc", http.StatusUnauthorized, "invalid token"},
		{"any authenticated", "/any", staffToken, http.StatusNoContent, ""},
		{"staff allowed", "/staff", staffToken, http.StatusNoContent, ""},
		{"staff on superuser route", "/super", staffToken, http.StatusUnauthorized, InsufficientPrivilegesMessage},
		{"superuser allowed", "/super", superToken, http.StatusNoContent, ""},
		{"missing claim", "/staff", noClaims, http.StatusBadRequest, InvalidClaimMessage},
		{"subject not a uuid", "/any", badSubject, http.StatusBadRequest, InvalidClaimMessage},
		{"inactive account", "/any", inactiveToken, http.StatusUnauthorized, "inactive account"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.message, string(body))
		})
	}
}
