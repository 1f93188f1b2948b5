package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/hrverify/internal/client/authflow"
	"github.com/dmitrijs2005/hrverify/internal/client/forms"
	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/dmitrijs2005/hrverify/internal/client/routes"
)

func (a *App) publicCommands() []Command {
	return []Command{
		{Name: "about", Help: "what HRVerify is", Run: a.goTo(routes.About)},
		{Name: "login", Help: "log in", Run: a.cmdLogin},
		{Name: "signup", Help: "create an account", Run: a.cmdSignup},
		{Name: "forgot", Help: "reset a forgotten password", Run: a.goTo(routes.ForgotPassword)},
	}
}

func (a *App) loginCommands() []Command {
	return []Command{
		{Name: "login", Help: "enter credentials (and OTP for admins)", Run: a.cmdLogin},
		{Name: "signup", Help: "create an account instead", Run: a.cmdSignup},
		{Name: "forgot", Help: "reset a forgotten password", Run: a.goTo(routes.ForgotPassword)},
	}
}

func (a *App) signupCommands() []Command {
	return []Command{
		{Name: "signup", Help: "fill in the signup form", Run: a.cmdSignup},
		{Name: "login", Help: "log in instead", Run: a.cmdLogin},
	}
}

func (a *App) recoveryCommands() []Command {
	return []Command{
		{Name: "request", Usage: "[email]", Help: "email a reset code", Run: a.cmdForgot},
		{Name: "reset", Help: "set a new password with the emailed code", Run: a.cmdReset},
		{Name: "login", Help: "back to login", Run: a.cmdLogin},
	}
}

func (a *App) cmdLogin(ctx context.Context, _ []string) error {
	if a.route != routes.Login || a.flow == nil {
		a.navigate(ctx, routes.Login)
	}
	if _, failed := a.flow.State().(authflow.Failed); failed {
		_, _ = a.flow.Back()
	}
	return a.runLogin(ctx)
}

func (a *App) cmdSignup(ctx context.Context, _ []string) error {
	if a.route != routes.Signup || a.flow == nil {
		a.navigate(ctx, routes.Signup)
	}
	return a.runSignup(ctx)
}

func askRole(a *App, current models.Role) (models.Role, error) {
	def := "candidate"
	if current != "" {
		def = strings.ToLower(string(current))
	}
	for {
		s, err := a.ask("Account type (candidate, company, admin)", def)
		if err != nil {
			return "", err
		}
		if r, ok := models.ParseRole(s); ok {
			return r, nil
		}
		a.fail("Unknown account type: " + s)
	}
}

// runLogin drives the login flow until it authenticates, fails or the user
// cancels.
func (a *App) runLogin(ctx context.Context) error {
	for {
		switch st := a.flow.State().(type) {
		case authflow.LoginForm:
			if st.Err != "" {
				a.fail(st.Err)
			}
			role, err := askRole(a, st.Role)
			if err != nil {
				return err
			}
			if _, err := a.flow.SelectRole(role); err != nil {
				return err
			}
			ident, err := a.ask("Email", st.Identifier)
			if err != nil {
				return err
			}
			prompt := "Password"
			if st.HasSecret() {
				prompt = "Password (empty keeps the one entered before)"
			}
			secret, err := a.askSecret(prompt)
			if err != nil {
				return err
			}
			a.loading("Signing in...")
			if _, err := a.flow.SubmitLogin(ctx, forms.LoginInput{Identifier: ident, Secret: secret, Role: role}); err != nil {
				return err
			}

		case authflow.AwaitingOtp:
			if st.Err != "" {
				a.fail(st.Err)
			}
			otp, err := a.ask("Please enter the 6-digit OTP to continue ('back' to change credentials)", "")
			if err != nil {
				return err
			}
			if strings.EqualFold(otp, "back") {
				_, _ = a.flow.Back()
				continue
			}
			if _, err := a.flow.SubmitOtp(ctx, otp); err != nil {
				return err
			}

		case authflow.Failed:
			if st.Redirect != "" {
				a.warn(st.Message)
				a.navigate(ctx, st.Redirect)
				return nil
			}
			a.fail("Login failed: " + st.Message)
			return nil

		case authflow.Authenticated:
			a.success(fmt.Sprintf("Logged in as %s.", st.Role))
			a.navigate(ctx, st.Target)
			return nil

		default:
			return authflow.ErrInvalidTransition
		}
	}
}

// runSignup drives the signup flow through verification and, for admins,
// the security code.
func (a *App) runSignup(ctx context.Context) error {
	flow := a.flow
	for {
		if a.flow != flow {
			// a 401 moved the shell to login mid-dialog
			a.showAbandoned(flow.State())
			return nil
		}

		switch st := a.flow.State().(type) {
		case authflow.SignupForm:
			a.showFieldErrors(st.Err, st.FieldErrors)
			in, err := a.askSignup(st)
			if err != nil {
				return err
			}
			a.loading("Creating account...")
			if _, err := a.flow.SubmitSignup(ctx, in); err != nil {
				return err
			}

		case authflow.AwaitingEmailVerification:
			if st.Err != "" {
				a.fail(st.Err)
			} else {
				a.success(fmt.Sprintf("Account created. A verification code was sent to %s.", st.Email))
			}
			code, err := a.ask("Enter the 6-digit verification code ('back' to edit details)", "")
			if err != nil {
				return err
			}
			if strings.EqualFold(code, "back") {
				_, _ = a.flow.Back()
				continue
			}
			if _, err := a.flow.SubmitVerification(ctx, code); err != nil {
				return err
			}

		case authflow.AwaitingAdminCode:
			if st.Err != "" {
				a.fail(st.Err)
			}
			code, err := a.ask("Admin security code ('back' to re-enter the verification code)", "")
			if err != nil {
				return err
			}
			if strings.EqualFold(code, "back") {
				_, _ = a.flow.Back()
				continue
			}
			if _, err := a.flow.SubmitAdminCode(ctx, code); err != nil {
				return err
			}

		case authflow.Failed:
			a.warn(st.Message)
			if st.Redirect != "" {
				a.navigate(ctx, st.Redirect)
			} else {
				a.navigate(ctx, routes.Login)
			}
			return nil

		case authflow.Authenticated:
			a.success(fmt.Sprintf("Welcome! Logged in as %s.", st.Role))
			a.navigate(ctx, st.Target)
			return nil

		default:
			return authflow.ErrInvalidTransition
		}
	}
}

// showAbandoned prints the error a flow was left with.
func (a *App) showAbandoned(st authflow.State) {
	switch st := st.(type) {
	case authflow.SignupForm:
		if st.Err != "" {
			a.fail(st.Err)
		}
	case authflow.AwaitingEmailVerification:
		if st.Err != "" {
			a.fail(st.Err)
		}
	case authflow.AwaitingAdminCode:
		if st.Err != "" {
			a.fail(st.Err)
		}
	}
}

func (a *App) askSignup(st authflow.SignupForm) (forms.SignupInput, error) {
	var in forms.SignupInput
	var err error

	if in.Role, err = askRole(a, st.Role); err != nil {
		return in, err
	}
	if in.FullName, err = a.ask("Full name", st.FullName); err != nil {
		return in, err
	}
	if in.Email, err = a.ask("Email", st.Email); err != nil {
		return in, err
	}
	if in.Phone, err = a.ask("Mobile number (optional, 10 digits, '-' to clear)", st.Phone); err != nil {
		return in, err
	}
	prompt := "Password (at least 6 characters)"
	if st.HasSecret() {
		prompt = "Password (empty keeps the one entered before)"
	}
	in.Secret, err = a.askSecret(prompt)
	return in, err
}

func (a *App) showFieldErrors(summary string, fields map[string]string) {
	if len(fields) == 0 {
		if summary != "" {
			a.fail(summary)
		}
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a.fail("  " + fields[k])
	}
}

func (a *App) cmdForgot(ctx context.Context, args []string) error {
	email := ""
	if len(args) > 0 {
		email = args[0]
	}
	email, err := a.ask("Email", email)
	if err != nil {
		return err
	}
	if err := a.recoveryFlow().ForgotPassword(ctx, email); err != nil {
		return err
	}
	a.success("OTP sent to your email. Use 'reset' to choose a new password.")
	return nil
}

func (a *App) cmdReset(ctx context.Context, _ []string) error {
	var in forms.ResetPasswordInput
	var err error
	if in.Email, err = a.ask("Email", ""); err != nil {
		return err
	}
	if in.OTP, err = a.ask("6-digit code from the email", ""); err != nil {
		return err
	}
	if in.NewPassword, err = a.askSecret("New password"); err != nil {
		return err
	}
	if err := a.recoveryFlow().ResetPassword(ctx, in); err != nil {
		return err
	}
	a.success("Password reset successful. You can log in now.")
	a.navigate(ctx, routes.Login)
	return nil
}

func (a *App) recoveryFlow() *authflow.Flow {
	if a.flow == nil {
		a.flow = authflow.NewLogin(a.api, a.store, a.flowOptions(), a.log)
	}
	return a.flow
}
