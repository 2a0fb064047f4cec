package models

import "gorm.io/gorm"

// Role tokens carried by a user and, at request time, by the principal.
const (
	RoleStandard = "standard"
	RoleAdmin    = "admin"
)

// User is an API account. The password is stored as a bcrypt hash and is
// never part of any serialized representation.
type User struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string   `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string   `json:"-" gorm:"type:varchar(255)"`
	Roles      []string `json:"roles" gorm:"serializer:json"`
	Newsletter bool     `json:"newsletter"`
	gorm.Model `json:"-"`
}

// UserPatch carries the payload of a create or update request. Password
// holds the plaintext from the payload; the pipeline hashes it before it
// ever reaches the entity.
type UserPatch struct {
	Email      *string   `json:"email"`
	Password   *string   `json:"password"`
	Roles      *[]string `json:"roles"`
	Newsletter *bool     `json:"newsletter"`
}

// Apply copies payload-present fields onto u, except the password, which the
// caller must hash and assign itself.
func (p *UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Roles != nil {
		u.Roles = *p.Roles
	}
	if p.Newsletter != nil {
		u.Newsletter = *p.Newsletter
	}
}

// UserView is the read representation of a user. It is the only shape a user
// is ever serialized to, and it has no password field to leak.
type UserView struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	Newsletter bool     `json:"newsletter"`
}

// View projects u onto its read representation.
func (u *User) View() UserView {
	return UserView{
		ID:         u.ID,
		Email:      u.Email,
		Roles:      u.Roles,
		Newsletter: u.Newsletter,
	}
}
