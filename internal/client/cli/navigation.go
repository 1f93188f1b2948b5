package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/hrverify/internal/client/authflow"
	"github.com/dmitrijs2005/hrverify/internal/client/client"
	"github.com/dmitrijs2005/hrverify/internal/client/controllers"
	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/dmitrijs2005/hrverify/internal/client/routes"
	"github.com/golang-jwt/jwt/v5"
)

// tokenSubject reads the "sub" claim without verifying the signature; it
// is only used for the prompt.
func tokenSubject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

func (a *App) status() string {
	s, ok := a.session(context.Background())
	if !ok {
		return string(a.route)
	}
	user := tokenSubject(s.Token)
	if user == "" {
		return fmt.Sprintf("(%s) %s", s.Role, a.route)
	}
	return fmt.Sprintf("(%s %s) %s", user, s.Role, a.route)
}

// navigate applies the role guard and enters the resulting route.
func (a *App) navigate(ctx context.Context, target routes.Route) {
	s, _ := a.session(ctx)
	dest := routes.Guard(target, s)
	if dest != target {
		a.warn(fmt.Sprintf("%s is not available, opening %s", target, dest))
	}
	a.route = dest
	a.enter(ctx)
}

// enter runs the on-activation work of the current route.
func (a *App) enter(ctx context.Context) {
	switch a.route {
	case routes.Login:
		a.flow = authflow.NewLogin(a.api, a.store, a.flowOptions(), a.log)
	case routes.Signup:
		a.flow = authflow.NewSignup(a.api, a.store, a.flowOptions(), a.log)
	case routes.About:
		a.info(aboutText)
	case routes.CandidateDashboard:
		a.report(a.loadCandidate(ctx))
	case routes.CompanyDashboard:
		a.report(a.loadCompany(ctx))
	case routes.CompanyDetails:
		if s, ok := a.session(ctx); ok && s.Role == models.RoleCompany {
			if err := a.company.LoadProfile(ctx); err == nil {
				a.showCompany(a.company.Profile)
			}
		}
	case routes.AdminDashboard:
		a.report(a.loadAdmin(ctx))
	case routes.Account:
		a.report(a.loadAccount(ctx))
	}
}

// report prints a command error. Cancellation is not an error.
func (a *App) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, errAborted), errors.Is(err, controllers.ErrCancelled):
		a.info("Cancelled.")
	case errors.Is(err, io.EOF):
	default:
		a.fail(client.Message(err))
	}
}

func (a *App) commands(ctx context.Context) []Command {
	cmds := []Command{
		{Name: "go", Usage: "<route>", Help: "open a screen (see 'routes')", Run: a.cmdGo},
		{Name: "routes", Help: "list screens", Run: a.cmdRoutes},
	}
	if _, ok := a.session(ctx); ok {
		cmds = append(cmds,
			Command{Name: "logout", Help: "end the session", Run: a.cmdLogout},
			Command{Name: "account", Help: "open account settings", Run: a.goTo(routes.Account)},
		)
	}

	switch a.route {
	case routes.Landing, routes.About:
		cmds = append(cmds, a.publicCommands()...)
	case routes.Login:
		cmds = append(cmds, a.loginCommands()...)
	case routes.Signup:
		cmds = append(cmds, a.signupCommands()...)
	case routes.ForgotPassword:
		cmds = append(cmds, a.recoveryCommands()...)
	case routes.CandidateDashboard:
		cmds = append(cmds, a.candidateCommands()...)
	case routes.CompanyDashboard:
		cmds = append(cmds, a.companyCommands()...)
	case routes.CompanyDetails:
		cmds = append(cmds, a.companyDetailsCommands()...)
	case routes.AdminDashboard:
		cmds = append(cmds, a.adminCommands()...)
	case routes.Account:
		cmds = append(cmds, a.accountCommands()...)
	}
	return cmds
}

func (a *App) goTo(r routes.Route) func(context.Context, []string) error {
	return func(ctx context.Context, _ []string) error {
		a.navigate(ctx, r)
		return nil
	}
}

func (a *App) cmdGo(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.info("Usage: go <route>")
		return nil
	}
	r, ok := routes.Parse(args[0])
	if !ok {
		a.fail("Unknown route: " + args[0])
		return nil
	}
	a.navigate(ctx, r)
	return nil
}

func (a *App) cmdRoutes(ctx context.Context, _ []string) error {
	s, _ := a.session(ctx)
	var b strings.Builder
	for _, r := range routes.All() {
		mark := " "
		if routes.Guard(r, s) == r {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %s\n", mark, r)
	}
	a.info(strings.TrimRight(b.String(), "\n"))
	return nil
}

func (a *App) cmdLogout(ctx context.Context, _ []string) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.contactDraft = models.ContactInput{}
	a.success("Logged out.")
	a.navigate(ctx, routes.Landing)
	return nil
}

const aboutText = `HRVerify checks whether the HR person contacting you really works for
the company they claim. Candidates verify and report contacts, companies
maintain their list of HR staff, and admins approve companies and moderate
contacts.`
