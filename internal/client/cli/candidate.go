package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/hrverify/internal/client/models"
)

func (a *App) candidateCommands() []Command {
	return []Command{
		{Name: "verify", Usage: "<email|phone> <value>", Help: "check an HR contact", Run: a.cmdVerify},
		{Name: "report", Help: "report a suspicious HR contact", Run: a.cmdReport},
		{Name: "reports", Help: "list your reports", Run: a.cmdReports},
	}
}

func (a *App) loadCandidate(ctx context.Context) error {
	a.loading("Loading your reports...")
	return a.candidate.LoadReports(ctx)
}

func (a *App) cmdVerify(ctx context.Context, args []string) error {
	var by, value string
	switch len(args) {
	case 0:
	case 1:
		value = args[0]
	default:
		by, value = args[0], strings.Join(args[1:], " ")
	}

	if value == "" {
		var err error
		if value, err = a.ask("Email or phone to verify", ""); err != nil {
			return err
		}
	}
	if by == "" {
		by = string(models.SearchByPhone)
		if strings.Contains(value, "@") {
			by = string(models.SearchByEmail)
		}
	}

	a.loading("Verifying...")
	res, err := a.candidate.Verify(ctx, models.SearchType(strings.ToLower(by)), value)
	if err != nil {
		return err
	}
	a.showVerifyResult(res)
	return nil
}

func (a *App) cmdReport(ctx context.Context, _ []string) error {
	var in models.ReportInput
	var err error

	if in.HRName, err = a.ask("HR name", ""); err != nil {
		return err
	}
	if in.HREmail, err = a.ask("HR email (email or phone required)", ""); err != nil {
		return err
	}
	if in.HRPhone, err = a.ask("HR phone", ""); err != nil {
		return err
	}
	if in.Reason, err = a.ask("Reason", ""); err != nil {
		return err
	}
	if in.DocumentPath, err = a.ask("Supporting document path (optional)", ""); err != nil {
		return err
	}

	rep, err := a.candidate.Report(ctx, in)
	if err != nil {
		return err
	}
	a.success("Report submitted (id " + rep.ID.String() + ").")
	return nil
}

func (a *App) cmdReports(ctx context.Context, _ []string) error {
	if err := a.loadCandidate(ctx); err != nil {
		return err
	}
	a.showReports(a.candidate.Reports.Items)
	return nil
}
