// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package auth signs the demo event manager in.
//
// # Scope
//
// The directory has exactly one account, a hard-coded event manager. There is
// no registration, password or refresh flow: auto-login issues a session token
// for that manager and every protected route trusts the token.
package auth

import "github.com/eventfulindia/eventful/internal/platform/sec"

// Manager is the profile of a signed-in event manager.
type Manager struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	// Role is the job title shown in the UI, not the authorization level.
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// DemoManager returns the only account.
func DemoManager() Manager {
	return Manager{
		ID:      "1",
		Name:    "Amit Patel",
		Email:   "amit.patel@eventful.com",
		Company: "Eventful India",
		Role:    "Event Manager",
		Avatar:  "https://images.pexels.com/photos/1043471/pexels-photo-1043471.jpeg?auto=compress&cs=tinysrgb&w=400",
	}
}

// demoRole is the authorization level carried in the demo manager's token.
const demoRole = sec.RoleManager
