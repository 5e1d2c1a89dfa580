package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/internal/api/presenters"
)

// statusFor maps service errors onto HTTP statuses. Unknown errors stay 500;
// every known lookup failure surfaces as an explicit 404 instead of leaking
// a storage error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrGroupNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrCartLineNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyInGroup),
		errors.Is(err, domain.ErrUnknownGroup),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// MethodNotAllowed answers the verbs a single-purpose endpoint does not
// serve, with the exact body the previous system used.
func MethodNotAllowed(c *fiber.Ctx) error {
	return presenters.MessageResponse(c, fiber.StatusMethodNotAllowed, domain.MessageInvalidRequestMethod)
}
