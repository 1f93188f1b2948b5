// Package routes is the route table of the shell: which screens exist and
// who may reach them.
package routes

import (
	"strings"

	"github.com/dmitrijs2005/hrverify/internal/client/models"
)

type Route string

const (
	Landing            Route = "/"
	About              Route = "/about"
	Login              Route = "/login"
	Signup             Route = "/signup"
	ForgotPassword     Route = "/forgot-password"
	CandidateDashboard Route = "/candidate"
	CompanyDashboard   Route = "/company"
	CompanyDetails     Route = "/company/details"
	AdminDashboard     Route = "/admin"
	Account            Route = "/account"
)

var public = map[Route]bool{
	Landing:        true,
	About:          true,
	Login:          true,
	Signup:         true,
	ForgotPassword: true,
}

// CompanyDetails is reachable by a COMPANY user who has no profile yet and
// therefore no session, so it is not role-scoped.
var scoped = map[Route]models.Role{
	CandidateDashboard: models.RoleCandidate,
	CompanyDashboard:   models.RoleCompany,
	AdminDashboard:     models.RoleAdmin,
}

// All lists every route in display order.
func All() []Route {
	return []Route{Landing, About, Login, Signup, ForgotPassword,
		CandidateDashboard, CompanyDashboard, CompanyDetails, AdminDashboard, Account}
}

// Parse accepts a route with or without the leading slash.
func Parse(s string) (Route, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	r := Route(strings.TrimRight(s, "/"))
	if r == "" {
		r = Landing
	}
	for _, known := range All() {
		if known == r {
			return r, true
		}
	}
	return "", false
}

func (r Route) Public() bool {
	return public[r]
}

// Dashboard is the landing route after login for role.
func Dashboard(role models.Role) Route {
	switch role {
	case models.RoleCandidate:
		return CandidateDashboard
	case models.RoleCompany:
		return CompanyDashboard
	case models.RoleAdmin:
		return AdminDashboard
	default:
		return Landing
	}
}

// Guard returns the route the shell should actually show when the user asks
// for target. Public routes always pass. Without a session everything else
// goes to Login; a session with the wrong role goes to its own dashboard.
func Guard(target Route, s models.Session) Route {
	if target.Public() || target == CompanyDetails {
		return target
	}
	if !s.Authenticated() {
		return Login
	}
	if want, ok := scoped[target]; ok && want != s.Role {
		return Dashboard(s.Role)
	}
	return target
}
