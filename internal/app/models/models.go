package models

import "errors"

// ErrUnknownRole is returned when a role value matches none of the four
// principal kinds.
var ErrUnknownRole = errors.New("unknown role")

// Role identifies the kind of an authenticated principal.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleTeacher  Role = "teacher"
	RoleStudent  Role = "student"
	RoleGuardian Role = "parent"
)

// Principal is the common shape of every authenticated actor. The
// authorization gate and the password-change path are written once against
// this interface instead of the four concrete types.
type Principal interface {
	// Kind returns the principal's role.
	Kind() Role
	// PrimaryID returns the internal numeric key.
	PrimaryID() int64
	// ExternalID returns the human-facing login identifier: the
	// role-prefixed registration number, or the email for guardians.
	ExternalID() string
	// PasswordHash returns the stored bcrypt hash.
	PasswordHash() string
	// DisplayName returns the name shown in sign-in responses.
	DisplayName() string
}
