package domain

import (
	"errors"
	"os"
)

// Group names are exact-match strings; there is no hierarchy between them.
// "delivery crew" and "crew" are distinct groups kept side by side because
// parts of the API address the crew by either name.
const (
	GroupManagers     = "managers"
	GroupCrew         = "crew"
	GroupCustomers    = "customers"
	GroupDeliveryCrew = "delivery crew"
)

var (
	MessageInvalidRequestMethod = "Invalid request method"
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageUserNotAllowed       = "user not allowed"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID       = errors.New("failed to parse UUID")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("user not allowed")
	ErrTokenNotFound   = errors.New("failed to token not found")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("token invalid")
)
