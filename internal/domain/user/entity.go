package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, company administration
	RoleHR       Role = "hr"       // Employee records, payroll, announcements
	RoleManager  Role = "manager"  // Can approve leave and adjust attendance
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join fields
	EmployeeID *string
}

// IsAdmin checks if user has full administrative access.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsHR checks if user can manage employee records and payroll.
func (u *User) IsHR() bool {
	return u.Role == RoleHR || u.Role == RoleAdmin
}

// IsManager checks if user can approve requests.
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.IsHR()
}

// CanApprove checks if user can approve leave requests.
func (u *User) CanApprove() bool {
	return u.IsManager()
}

// ValidRole reports whether r names a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}
