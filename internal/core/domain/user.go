package domain

import "strings"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User models the identity held by a session. It is fabricated at login or
// registration time and never mutated afterwards; a fresh login produces a
// fresh identity.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RoleForEmail derives the role granted to a login identity. Any email
// containing "admin" grants administrator access; everyone else is a member.
// There is no credential store to consult.
func RoleForEmail(email string) string {
	if strings.Contains(email, "admin") {
		return RoleAdmin
	}
	return RoleMember
}

// NameForEmail derives the display name for a login identity: the part of
// the address before the "@" separator, or the whole string without one.
func NameForEmail(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
