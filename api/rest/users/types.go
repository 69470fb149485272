package users

import "codeberg.org/foodmap/client/foodmap/users"

// UsersResponse lists all accounts for the admin console
type UsersResponse struct {
	Success bool          `json:"success"`
	Users   []*users.User `json:"users"`
}

// UserResponse wraps a single account
type UserResponse struct {
	Success bool        `json:"success"`
	User    *users.User `json:"user"`
}

// ChangeRoleRequest changes a user's role
type ChangeRoleRequest struct {
	Role string `json:"userType" binding:"required"`
}
