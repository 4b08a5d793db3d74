package model

import (
	"strings"
	"time"
)

// User Roles
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// GetPublicProfile returns the fields safe to expose on the public
// agent directory. The password hash is never serialized anyway, but
// the directory also hides the login username.
func (u *User) GetPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":        u.ID,
		"fullName":  strings.TrimSpace(u.FullName),
		"email":     u.Email,
		"phone":     u.Phone,
		"avatarUrl": u.AvatarURL,
		"role":      u.Role,
	}
}
