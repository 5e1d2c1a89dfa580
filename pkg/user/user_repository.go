package user

import (
	"context"

	"gorm.io/gorm"

	"github.com/littlelemon/backend/entities"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		GetGroupByName(ctx context.Context, name string) (*entities.Group, error)
		AddUserToGroup(ctx context.Context, user *entities.User, group *entities.Group) error
		RemoveUserFromGroup(ctx context.Context, user *entities.User, group *entities.Group) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Preload("Groups").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Preload("Groups").Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetGroupByName(ctx context.Context, name string) (*entities.Group, error) {
	var group entities.Group
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *userRepository) AddUserToGroup(ctx context.Context, user *entities.User, group *entities.Group) error {
	return r.db.WithContext(ctx).Model(user).Association("Groups").Append(group)
}

func (r *userRepository) RemoveUserFromGroup(ctx context.Context, user *entities.User, group *entities.Group) error {
	return r.db.WithContext(ctx).Model(user).Association("Groups").Delete(group)
}
