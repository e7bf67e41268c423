// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Roles

// UserRole is the authorization level carried in a session token.
type UserRole string

const (
	// RoleAdmin can do everything a manager can.
	RoleAdmin UserRole = "admin"

	// RoleManager books artists and reviews onboarding submissions.
	RoleManager UserRole = "manager"

	// RoleVisitor is the level of an anonymous caller.
	RoleVisitor UserRole = "visitor"
)

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleManager:
		return 20
	case RoleVisitor:
		return 10
	default:
		return 0
	}
}
