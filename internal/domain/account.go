// Package domain contains the core data types for the trip planner.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler, tourism).
package domain

import "time"

// Account is a registered user. PasswordHash holds the bcrypt digest; the
// plaintext password never leaves the signup call.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
	IsSuperuser  bool
	IsStaff      bool
	IsActive     bool
	LastLogin    *time.Time
	DateJoined   time.Time
}

// Signup is the input accepted when creating an account.
type Signup struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
}

// Session is what a successful login hands back to the caller.
type Session struct {
	Username     string
	AccessToken  string
	RefreshToken string
}

// Limits mirrored from the auth_user table.
const (
	MaxUsernameLen = 150
	MaxNameLen     = 150
	MaxEmailLen    = 254
)
