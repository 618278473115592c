package domain

import (
	"errors"
	"strings"
)

const (
	RoleAdmin     = "Admin"
	RoleManager   = "Manager"
	RoleUser      = "User"
	RoleDeveloper = "Developer"

	// RoleUnknown is displayed for identities that are not in the directory.
	RoleUnknown = "Unknown"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrInvalidUser  = errors.New("invalid user data")
)

// User is a directory entry. Usernames are unique ignoring case.
type User struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Location   string `json:"location"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// Key returns the case-insensitive directory key for a username.
func Key(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// UserStats summarises the directory for the reports page.
type UserStats struct {
	TotalUsers   int `json:"total_users"`
	AdminUsers   int `json:"admin_users"`
	ManagerUsers int `json:"manager_users"`
	RegularUsers int `json:"regular_users"`
}

// ComputeStats counts users by role. Developers count as regular users.
func ComputeStats(users []User) UserStats {
	stats := UserStats{TotalUsers: len(users)}
	for _, u := range users {
		switch u.Role {
		case RoleAdmin:
			stats.AdminUsers++
		case RoleManager:
			stats.ManagerUsers++
		case RoleUser, RoleDeveloper:
			stats.RegularUsers++
		}
	}
	return stats
}
