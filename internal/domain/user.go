package domain

import "time"

type UserRole string

const (
	UserRoleGuest  UserRole = "guest"
	UserRoleTenant UserRole = "tenant"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username string
	Email    string
	Role     UserRole
}
