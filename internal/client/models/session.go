// Package models holds the client-side shapes of backend resources and the
// request/response bodies of the REST API.
package models

import "strings"

// Role is the account kind a session is bound to.
type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleCompany   Role = "COMPANY"
	RoleAdmin     Role = "ADMIN"
)

// ParseRole accepts any letter case ("admin", "Admin", "ADMIN").
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// Session is the persisted credential pair. A zero Token means "not logged in".
type Session struct {
	Token string
	Role  Role
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}
