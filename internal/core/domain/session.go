package domain

import (
	"slices"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Credentials are collected per login attempt and never persisted.
type Credentials struct {
	Email    string
	Password string
}

// Claims holds the decoded payload fields of an authentication token.
// Only Roles takes part in authorization.
type Claims struct {
	Roles     []string
	Subject   string
	ExpiresAt time.Time
}

// Session is the authenticated identity of one browser tab.
// Roles is always derived from Token, never assigned on its own.
type Session struct {
	Token  string   `json:"-"`
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
}

// HasRole is the single authorization predicate used by views and routes.
// A nil session has no roles.
func HasRole(s *Session, role string) bool {
	if s == nil {
		return false
	}
	return slices.Contains(s.Roles, role)
}
