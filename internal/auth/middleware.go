package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	apperrors "github.com/zaer/hr-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller as described by its token.
// Nil flags mean the token did not carry the claim.
type Principal struct {
	SubjectID   string
	IsStaff     *bool
	IsSuperuser *bool
	IsActive    *bool
}

// AuthMiddleware validates bearer tokens and stores principals.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return apperrors.NewBadRequest(InvalidClaimMessage)
	}

	principal := &Principal{
		SubjectID:   claims.Subject,
		IsStaff:     claims.IsStaff,
		IsSuperuser: claims.IsSuperuser,
		IsActive:    claims.IsActive,
	}
	if principal.IsActive != nil && !*principal.IsActive {
		return apperrors.NewUnauthorized("inactive account")
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// Actor returns the subject id recorded in audit columns.
func Actor(c *fiber.Ctx) (string, error) {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return "", apperrors.NewUnauthorized("authentication required")
	}
	return principal.SubjectID, nil
}
