// Package authflow drives the multi-step login and signup dialogs.
//
// Login may stop at an OTP step (admin accounts). Signup goes through an
// emailed verification code and, for admins, a security code before the
// implicit login. The flow owns no I/O besides the API calls and the
// session store; the shell renders whatever State it reports.
package authflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hrverify/internal/client/client"
	"github.com/dmitrijs2005/hrverify/internal/client/forms"
	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/dmitrijs2005/hrverify/internal/client/routes"
	"github.com/dmitrijs2005/hrverify/internal/client/session"
	"github.com/dmitrijs2005/hrverify/internal/logging"
)

var (
	ErrInvalidTransition = errors.New("action not allowed in current step")
	ErrNoBack            = errors.New("no previous step")
)

const (
	msgCompanyProfile   = "Please complete your company profile setup."
	msgMissingToken     = "Login response did not include a token."
	msgUnexpectedOTP    = "Only admin accounts can log in with an OTP."
	msgOTPStillRequired = "OTP was not accepted."
	msgBadAdminCode     = "Invalid admin security code."
)

// API is the part of the backend the flow talks to.
type API interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	AdminLogin(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
}

// Options are the placeholder secrets of the signup admin gate.
type Options struct {
	AdminSecurityCode string
	DemoAdminOTP      string
}

type Flow struct {
	api   API
	store session.Store
	opts  Options
	log   logging.Logger

	state State
}

// NewLogin starts at LoginForm.
func NewLogin(api API, store session.Store, opts Options, log logging.Logger) *Flow {
	return newFlow(api, store, opts, log, LoginForm{})
}

// NewSignup starts at SignupForm.
func NewSignup(api API, store session.Store, opts Options, log logging.Logger) *Flow {
	return newFlow(api, store, opts, log, SignupForm{})
}

func newFlow(api API, store session.Store, opts Options, log logging.Logger, initial State) *Flow {
	if log == nil {
		log = logging.Nop()
	}
	return &Flow{api: api, store: store, opts: opts, log: log.With("component", "authflow"), state: initial}
}

func (f *Flow) State() State {
	return f.state
}

func (f *Flow) set(ctx context.Context, s State) State {
	f.log.Debug(ctx, "auth step", "from", f.state.Name(), "to", s.Name())
	f.state = s
	return s
}

// SelectRole changes the role on a form. Choosing a role while waiting for
// an OTP abandons the OTP step.
func (f *Flow) SelectRole(role models.Role) (State, error) {
	switch s := f.state.(type) {
	case LoginForm:
		s.Role = role
		f.state = s
	case Failed:
		r := s.Resume
		r.Role = role
		f.state = r
	case AwaitingOtp:
		f.state = LoginForm{Identifier: s.Identifier, Role: role}
	case SignupForm:
		s.Role = role
		f.state = s
	default:
		return f.state, ErrInvalidTransition
	}
	return f.state, nil
}

// SubmitLogin sends identifier and secret to the login endpoint. An empty
// Secret or Role falls back to what the form already holds.
func (f *Flow) SubmitLogin(ctx context.Context, in forms.LoginInput) (State, error) {
	var form LoginForm
	switch s := f.state.(type) {
	case LoginForm:
		form = s
	case Failed:
		form = s.Resume
	default:
		return f.state, ErrInvalidTransition
	}

	if in.Secret == "" {
		in.Secret = form.secret
	}
	if in.Role == "" {
		in.Role = form.Role
	}
	form = LoginForm{Identifier: in.Identifier, Role: in.Role, secret: in.Secret}

	if err := forms.Validate(in); err != nil {
		form.Err = err.Error()
		return f.set(ctx, form), nil
	}

	resp, err := f.api.Login(ctx, models.LoginRequest{Username: in.Identifier, Password: in.Secret})
	if err != nil {
		return f.fail(ctx, form, client.Message(err), ""), nil
	}

	switch resp.Message {
	case models.MessageOTPRequired:
		if in.Role != models.RoleAdmin {
			return f.fail(ctx, form, msgUnexpectedOTP, ""), nil
		}
		return f.set(ctx, AwaitingOtp{Identifier: in.Identifier, secret: in.Secret}), nil
	case models.MessageNoCompanyProfile:
		if in.Role == models.RoleCompany {
			return f.fail(ctx, form, msgCompanyProfile, routes.CompanyDetails), nil
		}
	}

	return f.establish(ctx, resp, in.Role, routes.Dashboard, func(msg string) State {
		return f.fail(ctx, form, msg, "")
	}), nil
}

// SubmitOtp completes an admin login. A rejected OTP keeps the flow at the
// OTP step so it can be re-entered.
func (f *Flow) SubmitOtp(ctx context.Context, otp string) (State, error) {
	s, ok := f.state.(AwaitingOtp)
	if !ok {
		return f.state, ErrInvalidTransition
	}
	s.Err = ""

	if err := forms.Validate(forms.OtpInput{OTP: otp}); err != nil {
		s.Err = err.Error()
		return f.set(ctx, s), nil
	}

	resp, err := f.api.AdminLogin(ctx, models.LoginRequest{Username: s.Identifier, Password: s.secret, OTP: otp})
	if err != nil {
		s.Err = client.Message(err)
		return f.set(ctx, s), nil
	}
	if resp.Message == models.MessageOTPRequired {
		s.Err = msgOTPStillRequired
		return f.set(ctx, s), nil
	}

	return f.establish(ctx, resp, models.RoleAdmin, routes.Dashboard, func(msg string) State {
		s.Err = msg
		return f.set(ctx, s)
	}), nil
}

// SubmitSignup validates locally and, only if that passes, calls signup.
func (f *Flow) SubmitSignup(ctx context.Context, in forms.SignupInput) (State, error) {
	prev, ok := f.state.(SignupForm)
	if !ok {
		return f.state, ErrInvalidTransition
	}

	if in.Secret == "" {
		in.Secret = prev.secret
	}
	if in.Role == "" {
		in.Role = prev.Role
	}
	form := SignupForm{FullName: in.FullName, Email: in.Email, Phone: in.Phone, Role: in.Role, secret: in.Secret}

	if err := forms.Validate(in); err != nil {
		form.Err = err.Error()
		var ve *forms.ValidationError
		if errors.As(err, &ve) {
			form.FieldErrors = ve.Fields
		}
		return f.set(ctx, form), nil
	}

	_, err := f.api.Signup(ctx, models.SignupRequest{
		Username: in.Email,
		Email:    in.Email,
		FullName: in.FullName,
		Phone:    in.Phone,
		Password: in.Secret,
		Role:     in.Role,
	})
	if err != nil {
		form.Err = client.Message(err)
		return f.set(ctx, form), nil
	}

	return f.set(ctx, AwaitingEmailVerification{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Role:     in.Role,
		secret:   in.Secret,
	}), nil
}

// SubmitVerification accepts any 6-digit code; the backend offers no
// endpoint to check it.
func (f *Flow) SubmitVerification(ctx context.Context, code string) (State, error) {
	s, ok := f.state.(AwaitingEmailVerification)
	if !ok {
		return f.state, ErrInvalidTransition
	}
	s.Err = ""

	if err := forms.Validate(forms.VerificationInput{Code: code}); err != nil {
		s.Err = err.Error()
		return f.set(ctx, s), nil
	}

	if s.Role == models.RoleAdmin {
		return f.set(ctx, AwaitingAdminCode{Email: s.Email, verification: s}), nil
	}

	resp, err := f.api.Login(ctx, models.LoginRequest{Username: s.Email, Password: s.secret})
	if err != nil {
		s.Err = client.Message(err)
		return f.set(ctx, s), nil
	}
	if resp.Message == models.MessageNoCompanyProfile && resp.Token == "" {
		return f.set(ctx, Failed{
			Message:  msgCompanyProfile,
			Redirect: routes.CompanyDetails,
			Resume:   LoginForm{Identifier: s.Email, Role: s.Role},
		}), nil
	}

	return f.establish(ctx, resp, s.Role, landingAfterSignup, func(msg string) State {
		s.Err = msg
		return f.set(ctx, s)
	}), nil
}

// SubmitAdminCode compares code with the configured admin security code and
// on a match logs in through the admin endpoint with the demo OTP.
func (f *Flow) SubmitAdminCode(ctx context.Context, code string) (State, error) {
	s, ok := f.state.(AwaitingAdminCode)
	if !ok {
		return f.state, ErrInvalidTransition
	}
	s.Err = ""

	if err := forms.Validate(forms.AdminCodeInput{Code: code}); err != nil {
		s.Err = err.Error()
		return f.set(ctx, s), nil
	}
	if code != f.opts.AdminSecurityCode {
		s.Err = msgBadAdminCode
		return f.set(ctx, s), nil
	}

	v := s.verification
	resp, err := f.api.AdminLogin(ctx, models.LoginRequest{Username: v.Email, Password: v.secret, OTP: f.opts.DemoAdminOTP})
	if err != nil {
		s.Err = client.Message(err)
		return f.set(ctx, s), nil
	}

	return f.establish(ctx, resp, models.RoleAdmin, routes.Dashboard, func(msg string) State {
		s.Err = msg
		return f.set(ctx, s)
	}), nil
}

// Back returns to the previous step keeping the fields entered there.
func (f *Flow) Back() (State, error) {
	switch s := f.state.(type) {
	case AwaitingOtp:
		f.state = LoginForm{Identifier: s.Identifier, Role: models.RoleAdmin, secret: s.secret}
	case AwaitingEmailVerification:
		f.state = SignupForm{FullName: s.FullName, Email: s.Email, Phone: s.Phone, Role: s.Role, secret: s.secret}
	case AwaitingAdminCode:
		v := s.verification
		v.Err = ""
		f.state = v
	case Failed:
		f.state = s.Resume
	default:
		return f.state, ErrNoBack
	}
	return f.state, nil
}

// establish stores the session from a login response and moves to
// Authenticated. fallback is the role chosen on the form, used when the
// response omits one. fail builds the state for a response without a token.
func (f *Flow) establish(ctx context.Context, resp *models.AuthResponse, fallback models.Role,
	target func(models.Role) routes.Route, fail func(msg string) State) State {

	if resp.Token == "" {
		msg := msgMissingToken
		if resp.Message != "" {
			msg = resp.Message
		}
		return fail(msg)
	}

	role := fallback
	if r, ok := models.ParseRole(string(resp.Role)); ok {
		role = r
	}

	if err := f.store.Set(ctx, resp.Token, role); err != nil {
		f.log.Error(ctx, "failed to store session", "error", err)
		return fail(fmt.Sprintf("could not save session: %v", err))
	}

	f.log.Info(ctx, "logged in", "role", role)
	return f.set(ctx, Authenticated{Role: role, Target: target(role)})
}

func (f *Flow) fail(ctx context.Context, form LoginForm, msg string, redirect routes.Route) State {
	return f.set(ctx, Failed{Message: msg, Redirect: redirect, Resume: form})
}

func landingAfterSignup(role models.Role) routes.Route {
	if role == models.RoleCompany {
		return routes.CompanyDetails
	}
	return routes.Dashboard(role)
}
