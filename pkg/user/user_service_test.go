package user

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/entities"
)

type fakeUserRepository struct {
	users  map[string]*entities.User
	groups map[string]*entities.Group
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users: map[string]*entities.User{},
		groups: map[string]*entities.Group{
			domain.GroupManagers:     {ID: 1, Name: domain.GroupManagers},
			domain.GroupCrew:         {ID: 2, Name: domain.GroupCrew},
			domain.GroupCustomers:    {ID: 3, Name: domain.GroupCustomers},
			domain.GroupDeliveryCrew: {ID: 4, Name: domain.GroupDeliveryCrew},
		},
	}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) GetGroupByName(_ context.Context, name string) (*entities.Group, error) {
	group, ok := r.groups[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return group, nil
}

func (r *fakeUserRepository) AddUserToGroup(_ context.Context, user *entities.User, group *entities.Group) error {
	user.Groups = append(user.Groups, group)
	return nil
}

func (r *fakeUserRepository) RemoveUserFromGroup(_ context.Context, user *entities.User, group *entities.Group) error {
	kept := user.Groups[:0]
	for _, g := range user.Groups {
		if g.Name != group.Name {
			kept = append(kept, g)
		}
	}
	user.Groups = kept
	return nil
}

type stubJWTService struct{}

func (stubJWTService) GenerateTokenUser(userID string) string         { return "token-" + userID }
func (stubJWTService) ValidateTokenUser(string) (*gojwt.Token, error) { return nil, nil }
func (stubJWTService) GetUserIDByToken(token string) (string, error)  { return token, nil }

func seedUser(repo *fakeUserRepository, groups ...string) *entities.User {
	user := &entities.User{ID: uuid.New(), Username: "alex"}
	for _, name := range groups {
		user.Groups = append(user.Groups, repo.groups[name])
	}
	repo.users[user.ID.String()] = user
	return user
}

func TestAssignGroupConflictOnSecondCall(t *testing.T) {
	c := qt.New(t)
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWTService{})
	user := seedUser(repo)

	c.Assert(svc.AssignGroup(context.Background(), user.ID.String(), domain.GroupManagers), qt.IsNil)
	err := svc.AssignGroup(context.Background(), user.ID.String(), domain.GroupManagers)
	c.Assert(err, qt.ErrorIs, domain.ErrAlreadyInGroup)
}

func TestAssignGroupRejectsUnknownGroup(t *testing.T) {
	c := qt.New(t)
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWTService{})
	user := seedUser(repo)

	err := svc.AssignGroup(context.Background(), user.ID.String(), "customers")
	c.Assert(err, qt.ErrorIs, domain.ErrUnknownGroup)
}

func TestAssignGroupUnknownUser(t *testing.T) {
	c := qt.New(t)
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWTService{})

	err := svc.AssignGroup(context.Background(), uuid.NewString(), domain.GroupManagers)
	c.Assert(err, qt.ErrorIs, domain.ErrUserNotFound)
}

func TestRevokeGroupIdempotent(t *testing.T) {
	c := qt.New(t)
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWTService{})
	user := seedUser(repo)

	// Revoking a membership the user never had still succeeds.
	c.Assert(svc.RevokeGroup(context.Background(), user.ID.String(), domain.GroupManagers), qt.IsNil)

	c.Assert(svc.AssignGroup(context.Background(), user.ID.String(), domain.GroupManagers), qt.IsNil)
	c.Assert(svc.RevokeGroup(context.Background(), user.ID.String(), domain.GroupManagers), qt.IsNil)
	c.Assert(svc.RevokeGroup(context.Background(), user.ID.String(), domain.GroupManagers), qt.IsNil)
	c.Assert(user.InGroup(domain.GroupManagers), qt.IsFalse)
}

// The role report runs through legacyGroupContains, whose comparison never
// matches. Even an actual manager reads back as "none"; this pins that
// inherited behavior so a fix is a deliberate, visible change.
func TestGetRoleLegacyAlwaysNone(t *testing.T) {
	c := qt.New(t)
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWTService{})

	tests := []struct {
		name   string
		groups []string
	}{
		{"manager", []string{domain.GroupManagers}},
		{"delivery crew", []string{domain.GroupDeliveryCrew}},
		{"no groups", nil},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			user := seedUser(repo, tt.groups...)
			role, err := svc.GetRole(context.Background(), user.ID.String())
			c.Assert(err, qt.IsNil)
			c.Assert(role, qt.Equals, "none")
		})
	}
}

func TestAssignDeliveryCrewQuietOnMember(t *testing.T) {
	c := qt.New(t)
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWTService{})
	user := seedUser(repo)

	username, err := svc.AssignDeliveryCrew(context.Background(), user.ID.String())
	c.Assert(err, qt.IsNil)
	c.Assert(username, qt.Equals, "alex")
	c.Assert(user.InGroup(domain.GroupDeliveryCrew), qt.IsTrue)

	// Unlike AssignGroup there is no conflict on repetition.
	_, err = svc.AssignDeliveryCrew(context.Background(), user.ID.String())
	c.Assert(err, qt.IsNil)
}

func TestRegisterAndLogin(t *testing.T) {
	c := qt.New(t)
	repo := newFakeUserRepository()
	svc := NewUserService(repo, stubJWTService{})

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "maria",
		Email:    "maria@example.com",
		Password: "sup3rsecret",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(res.Username, qt.Equals, "maria")

	created, err := repo.GetUserByUsername(context.Background(), "maria")
	c.Assert(err, qt.IsNil)
	c.Assert(created.InGroup(domain.GroupCustomers), qt.IsTrue)

	_, err = svc.Register(context.Background(), domain.RegisterRequest{
		Username: "maria",
		Email:    "other@example.com",
		Password: "sup3rsecret",
	})
	c.Assert(err, qt.ErrorIs, domain.ErrUsernameTaken)

	login, err := svc.Login(context.Background(), domain.LoginRequest{Username: "maria", Password: "sup3rsecret"})
	c.Assert(err, qt.IsNil)
	c.Assert(login.Token, qt.Not(qt.Equals), "")

	_, err = svc.Login(context.Background(), domain.LoginRequest{Username: "maria", Password: "wrong"})
	c.Assert(err, qt.ErrorIs, domain.ErrInvalidCredentials)
}
