package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/internal/api/presenters"
	"github.com/littlelemon/backend/pkg/jwt"
	"github.com/littlelemon/backend/pkg/policy"
	"github.com/littlelemon/backend/pkg/user"
)

const principalKey = "principal"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		Require(requirement policy.Requirement) fiber.Handler
		RequireMenuItemRole() fiber.Handler
	}

	middleware struct {
		policy      policy.Policy
		userService user.UserService
	}
)

func NewMiddleware(p policy.Policy, userService user.UserService) Middleware {
	return &middleware{
		policy:      p,
		userService: userService,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Authorization, Content-Type",
	})
}

// AuthMiddleware resolves the bearer token into a principal: identity from
// the token, superuser flag and group memberships re-read from storage on
// every request.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		token := strings.TrimPrefix(header, "Bearer ")
		userID, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		principal, err := m.userService.GetPrincipal(c.Context(), userID)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", userID)
		c.Locals(principalKey, principal)
		return c.Next()
	}
}

func (m *middleware) Require(requirement policy.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return m.authorize(c, requirement)
	}
}

// RequireMenuItemRole applies the per-request role resolution of the single
// menu item endpoint. Reads need authentication only; writes get the
// requirement derived from the principal's memberships.
func (m *middleware) RequireMenuItemRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodGet {
			return m.authorize(c, policy.RequireAuthenticated)
		}
		principal := PrincipalFromCtx(c)
		return m.authorize(c, policy.ResolveMenuItemRequirement(principal))
	}
}

func (m *middleware) authorize(c *fiber.Ctx, requirement policy.Requirement) error {
	principal := PrincipalFromCtx(c)
	if err := m.policy.Authorize(principal, requirement); err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, err)
	}
	return c.Next()
}

func PrincipalFromCtx(c *fiber.Ctx) policy.Principal {
	principal, ok := c.Locals(principalKey).(policy.Principal)
	if !ok {
		return policy.Principal{}
	}
	return principal
}
