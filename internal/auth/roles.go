package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/zaer/hr-service/pkg/util"
)

const (
	// InvalidClaimMessage is returned when a token lacks a required claim.
	InvalidClaimMessage = "invalid token claim."
	// InsufficientPrivilegesMessage is returned when a required role flag is false.
	InsufficientPrivilegesMessage = "insufficient privileges."
)

// RequireStaff ensures the caller's token sets is_staff.
func RequireStaff() fiber.Handler {
	return requireFlag(func(p *Principal) *bool { return p.IsStaff })
}

// RequireSuperuser ensures the caller's token sets is_superuser.
func RequireSuperuser() fiber.Handler {
	return requireFlag(func(p *Principal) *bool { return p.IsSuperuser })
}

// RequireAuthenticated ensures a principal was stored by the auth middleware.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

func requireFlag(flag func(*Principal) *bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		value := flag(principal)
		if value == nil {
			return apperrors.NewBadRequest(InvalidClaimMessage)
		}
		if !*value {
			return apperrors.NewUnauthorized(InsufficientPrivilegesMessage)
		}
		return c.Next()
	}
}
