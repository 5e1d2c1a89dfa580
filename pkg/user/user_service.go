package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/entities"
	"github.com/littlelemon/backend/pkg/jwt"
	"github.com/littlelemon/backend/pkg/policy"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
		GetPrincipal(ctx context.Context, userID string) (policy.Principal, error)

		AssignGroup(ctx context.Context, userID, group string) error
		RevokeGroup(ctx context.Context, userID, group string) error
		GetRole(ctx context.Context, userID string) (string, error)
		AssignDeliveryCrew(ctx context.Context, userID string) (string, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.RegisterResponse{}, domain.ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	// New accounts start as customers.
	if group, err := s.userRepository.GetGroupByName(ctx, domain.GroupCustomers); err == nil {
		if err := s.userRepository.AddUserToGroup(ctx, user, group); err != nil {
			return domain.RegisterResponse{}, err
		}
	}

	return domain.RegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	return domain.LoginResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID.String()),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Email:       user.Email,
		IsSuperuser: user.IsSuperuser,
		Groups:      user.GroupNames(),
	}, nil
}

// GetPrincipal builds the per-request identity the access policy evaluates.
func (s *userService) GetPrincipal(ctx context.Context, userID string) (policy.Principal, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return policy.Principal{}, domain.ErrUserNotFound
		}
		return policy.Principal{}, err
	}

	return policy.Principal{
		UserID:        user.ID.String(),
		Authenticated: true,
		Superuser:     user.IsSuperuser,
		Groups:        user.GroupNames(),
	}, nil
}

// AssignGroup adds the user to the managers or delivery crew group. A fresh
// assignment succeeds; assigning an existing member is a conflict, not a
// no-op. Revocation below is the asymmetric counterpart.
func (s *userService) AssignGroup(ctx context.Context, userID, group string) error {
	if group != domain.GroupManagers && group != domain.GroupDeliveryCrew {
		return domain.ErrUnknownGroup
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.InGroup(group) {
		return domain.ErrAlreadyInGroup
	}

	groupEntity, err := s.userRepository.GetGroupByName(ctx, group)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroupNotFound
		}
		return err
	}

	return s.userRepository.AddUserToGroup(ctx, user, groupEntity)
}

// RevokeGroup removes the membership if present and succeeds either way.
func (s *userService) RevokeGroup(ctx context.Context, userID, group string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	groupEntity, err := s.userRepository.GetGroupByName(ctx, group)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroupNotFound
		}
		return err
	}

	if !user.InGroup(group) {
		return nil
	}

	return s.userRepository.RemoveUserFromGroup(ctx, user, groupEntity)
}

// GetRole reports the user's management role through legacyGroupContains,
// so it answers "none" even for actual members. See that function.
func (s *userService) GetRole(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	if legacyGroupContains(user.Groups, domain.GroupManagers) {
		return "manager", nil
	}
	if legacyGroupContains(user.Groups, domain.GroupDeliveryCrew) {
		return "delivery crew", nil
	}
	return "none", nil
}

// AssignDeliveryCrew adds the user to the delivery crew group without a
// membership check; re-assigning a member succeeds quietly, unlike
// AssignGroup.
func (s *userService) AssignDeliveryCrew(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	group, err := s.userRepository.GetGroupByName(ctx, domain.GroupDeliveryCrew)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrGroupNotFound
		}
		return "", err
	}

	if !user.InGroup(group.Name) {
		if err := s.userRepository.AddUserToGroup(ctx, user, group); err != nil {
			return "", err
		}
	}
	return user.Username, nil
}

// legacyGroupContains reproduces the membership probe the previous system
// shipped with: it compares the bare group name against whole group records
// instead of their names, so it never matches. The role report endpoint
// keeps this behavior on purpose; correcting it changes an observable
// response. Covered by a test pinning the always-false result.
func legacyGroupContains(groups []*entities.Group, name string) bool {
	for _, g := range groups {
		if fmt.Sprintf("%v", g) == name {
			return true
		}
	}
	return false
}
