package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username    string    `gorm:"uniqueIndex" json:"username"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	IsSuperuser bool      `json:"is_superuser"`

	Groups []*Group `gorm:"many2many:user_groups" json:"groups,omitempty"`
	Timestamp
}

type Group struct {
	ID   uint   `gorm:"primary_key" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`

	Users []*User `gorm:"many2many:user_groups" json:"-"`
}

// InGroup reports membership by exact group name.
func (u *User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

// GroupNames returns the user's group names in storage order.
func (u *User) GroupNames() []string {
	names := make([]string, 0, len(u.Groups))
	for _, g := range u.Groups {
		names = append(names, g.Name)
	}
	return names
}
