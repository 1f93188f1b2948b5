package authflow

import (
	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/dmitrijs2005/hrverify/internal/client/routes"
)

// State is one step of the flow. Each step is its own type so that only the
// fields meaningful at that step exist.
type State interface {
	Name() string
	state()
}

// LoginForm collects identifier, secret and role.
type LoginForm struct {
	Identifier string
	Role       models.Role
	// Err is the inline error of the last submission, if any.
	Err string

	secret string
}

// SignupForm collects the signup fields.
type SignupForm struct {
	FullName string
	Email    string
	Phone    string
	Role     models.Role

	Err         string
	FieldErrors map[string]string

	secret string
}

// AwaitingOtp follows a login answered with OTP_REQUIRED. The secret is
// locked: only the OTP is asked for.
type AwaitingOtp struct {
	Identifier string
	Err        string

	secret string
}

// AwaitingEmailVerification follows a successful signup call.
type AwaitingEmailVerification struct {
	FullName string
	Email    string
	Phone    string
	Role     models.Role
	Err      string

	secret string
}

// AwaitingAdminCode follows email verification when the role is ADMIN.
type AwaitingAdminCode struct {
	Email string
	Err   string

	verification AwaitingEmailVerification
}

// Authenticated means the session store holds a token for Role.
type Authenticated struct {
	Role   models.Role
	Target routes.Route
}

// Failed carries the message of a failed login. Redirect, when set, is the
// route the shell should open instead of staying on the login form.
type Failed struct {
	Message  string
	Redirect routes.Route
	Resume   LoginForm
}

func (LoginForm) Name() string                 { return "login" }
func (SignupForm) Name() string                { return "signup" }
func (AwaitingOtp) Name() string               { return "otp" }
func (AwaitingEmailVerification) Name() string { return "verify-email" }
func (AwaitingAdminCode) Name() string         { return "admin-code" }
func (Authenticated) Name() string             { return "authenticated" }
func (Failed) Name() string                    { return "failed" }

func (LoginForm) state()                 {}
func (SignupForm) state()                {}
func (AwaitingOtp) state()               {}
func (AwaitingEmailVerification) state() {}
func (AwaitingAdminCode) state()         {}
func (Authenticated) state()             {}
func (Failed) state()                    {}

// HasSecret reports whether a back navigation restored an already-entered
// secret, so the form may be resubmitted with an empty one.
func (f LoginForm) HasSecret() bool  { return f.secret != "" }
func (f SignupForm) HasSecret() bool { return f.secret != "" }
