package domain

import "errors"

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"
	MessageSuccessGetMe    = "user profile retrieved successfully"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetMe    = "failed to retrieve user profile"

	MessageFailedManageGroup = "failed to manage group membership"

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrGroupNotFound      = errors.New("group not found")
	ErrAlreadyInGroup     = errors.New("user already in group")
	ErrUnknownGroup       = errors.New("group must be managers or delivery crew")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	MeResponse struct {
		ID          string   `json:"id"`
		Username    string   `json:"username"`
		Email       string   `json:"email"`
		IsSuperuser bool     `json:"is_superuser"`
		Groups      []string `json:"groups"`
	}

	ManageGroupRequest struct {
		Group string `json:"group" validate:"required"`
	}

	AssignDeliveryCrewRequest struct {
		ID string `json:"id" validate:"required,uuid"`
	}
)
