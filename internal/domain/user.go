package domain

import "time"

const (
	RoleTourist = "tourist"
	RoleSeller  = "seller"
	RoleAdmin   = "admin"
)

type User struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) CanManageProducts() bool {
	return u.Role == RoleSeller || u.Role == RoleAdmin
}
