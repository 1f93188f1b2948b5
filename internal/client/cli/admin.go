package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hrverify/internal/client/models"
)

func (a *App) adminCommands() []Command {
	return []Command{
		{Name: "stats", Help: "dashboard numbers", Run: a.cmdAdminStats},
		{Name: "companies", Usage: "[all|pending|approved|rejected]", Help: "list companies", Run: a.cmdAdminCompanies},
		{Name: "find", Usage: "<text>", Help: "filter loaded companies", Run: a.cmdAdminFind},
		{Name: "approve", Usage: "<id>", Help: "approve a company", Run: a.cmdAdminApprove},
		{Name: "reject", Usage: "<id>", Help: "reject a company", Run: a.cmdAdminReject},
		{Name: "contacts", Usage: "[active|suspended] [text]", Help: "list HR contacts", Run: a.cmdAdminContacts},
		{Name: "add-contact", Help: "add an HR contact", Run: a.cmdAdminAddContact},
		{Name: "delete-contact", Usage: "<id>", Help: "delete an HR contact", Run: a.cmdAdminDeleteContact},
		{Name: "activate", Usage: "<id>", Help: "mark a contact active", Run: a.contactStatus(models.ContactActive)},
		{Name: "suspend", Usage: "<id>", Help: "suspend a contact", Run: a.contactStatus(models.ContactSuspended)},
		{Name: "import", Usage: "<file.csv>", Help: "bulk add contacts", Run: a.cmdAdminImport},
		{Name: "bulk-delete", Usage: "<file.csv>", Help: "bulk delete by email or phone", Run: a.cmdAdminBulkDelete},
		{Name: "reports", Usage: "[status]", Help: "list reports", Run: a.cmdAdminReports},
		{Name: "report-status", Usage: "<id> <status>", Help: "move a report to a new status", Run: a.cmdAdminReportStatus},
		{Name: "candidates", Help: "list candidates", Run: a.cmdAdminCandidates},
		{Name: "prefer", Usage: "<id>", Help: "toggle a candidate's preferred flag", Run: a.cmdAdminPrefer},
	}
}

func (a *App) loadAdmin(ctx context.Context) error {
	a.loading("Loading dashboard...")
	if err := a.admin.LoadStats(ctx); err != nil {
		return err
	}
	a.showStats(a.admin.Stats)
	return a.admin.LoadCompanies(ctx, a.admin.CompanyFilter)
}

func (a *App) showStats(s *models.AdminStats) {
	if s == nil {
		return
	}
	a.table([]string{"COMPANIES", "PENDING", "HR CONTACTS", "FLAGGED REPORTS"}, [][]string{{
		fmt.Sprint(s.TotalCompanies), fmt.Sprint(s.PendingApprovals), fmt.Sprint(s.TotalContacts), fmt.Sprint(s.FlaggedReports),
	}})
}

func (a *App) cmdAdminStats(ctx context.Context, _ []string) error {
	if err := a.admin.LoadStats(ctx); err != nil {
		return err
	}
	a.showStats(a.admin.Stats)
	return nil
}

func (a *App) cmdAdminCompanies(ctx context.Context, args []string) error {
	status := a.admin.CompanyFilter
	if len(args) > 0 {
		status = args[0]
	}
	a.loading("Loading companies...")
	if err := a.admin.LoadCompanies(ctx, status); err != nil {
		return err
	}
	a.showCompanies(a.admin.Companies.Items)
	return nil
}

func (a *App) cmdAdminFind(_ context.Context, args []string) error {
	a.showCompanies(a.admin.SearchCompanies(strings.Join(args, " ")))
	return nil
}

func (a *App) cmdAdminApprove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.info("Usage: approve <id>")
		return nil
	}
	c, err := a.admin.ApproveCompany(ctx, args[0])
	if err != nil {
		return err
	}
	a.success(c.Name + " approved.")
	return nil
}

func (a *App) cmdAdminReject(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.info("Usage: reject <id>")
		return nil
	}
	c, err := a.admin.RejectCompany(ctx, args[0])
	if err != nil {
		return err
	}
	a.success(c.Name + " rejected.")
	return nil
}

func (a *App) cmdAdminContacts(ctx context.Context, args []string) error {
	a.loading("Loading HR contacts...")
	if err := a.admin.LoadContacts(ctx); err != nil {
		return err
	}

	var status models.ContactStatus
	if len(args) > 0 {
		switch s := models.ContactStatus(strings.ToUpper(args[0])); s {
		case models.ContactActive, models.ContactSuspended:
			status = s
			args = args[1:]
		}
	}
	a.showContacts(a.admin.SearchContacts(strings.Join(args, " "), status))
	return nil
}

func (a *App) cmdAdminAddContact(ctx context.Context, _ []string) error {
	in, err := a.askContact(a.contactDraft)
	if err != nil {
		return err
	}
	if in.Company, err = a.ask("Company (optional, '-' to clear)", a.contactDraft.Company); err != nil {
		return err
	}
	hc, err := a.admin.AddContact(ctx, in)
	if err != nil {
		a.contactDraft = in
		return err
	}
	a.contactDraft = models.ContactInput{}
	a.success("HR contact added (id " + hc.ID.String() + ").")
	return nil
}

func (a *App) cmdAdminDeleteContact(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.info("Usage: delete-contact <id>")
		return nil
	}
	if err := a.admin.DeleteContact(ctx, args[0], a); err != nil {
		return err
	}
	a.success("HR contact deleted.")
	return nil
}

func (a *App) contactStatus(s models.ContactStatus) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		if len(args) == 0 {
			a.info("Usage: <activate|suspend> <id>")
			return nil
		}
		hc, err := a.admin.SetContactStatus(ctx, args[0], s)
		if err != nil {
			return err
		}
		a.success(fmt.Sprintf("%s is now %s.", hc.Name, hc.Status))
		return nil
	}
}

func (a *App) cmdAdminImport(ctx context.Context, args []string) error {
	f, err := a.openArg(args, "CSV file to import")
	if err != nil {
		return err
	}
	defer f.Close()

	a.loading("Uploading HR contacts...")
	created, err := a.admin.BulkImport(ctx, f)
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("%d contacts added.", len(created)))
	return nil
}

func (a *App) cmdAdminBulkDelete(ctx context.Context, args []string) error {
	if len(a.admin.Contacts.Items) == 0 {
		if err := a.admin.LoadContacts(ctx); err != nil {
			return err
		}
	}
	f, err := a.openArg(args, "CSV file with an email or phone column")
	if err != nil {
		return err
	}
	defer f.Close()

	removed, err := a.admin.BulkDelete(ctx, f, a)
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("%d contacts deleted.", len(removed)))
	return nil
}

func (a *App) cmdAdminReports(ctx context.Context, args []string) error {
	var status models.ReportStatus
	if len(args) > 0 && !strings.EqualFold(args[0], "all") {
		status = models.ReportStatus(strings.ToUpper(args[0]))
	}
	a.loading("Loading reports...")
	if err := a.admin.LoadReports(ctx, status); err != nil {
		return err
	}
	a.showReports(a.admin.Reports.Items)
	return nil
}

func (a *App) cmdAdminReportStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		a.info("Usage: report-status <id> <pending|under_review|resolved|rejected>")
		return nil
	}
	r, err := a.admin.SetReportStatus(ctx, args[0], models.ReportStatus(args[1]))
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("Report %s is now %s.", r.ID, r.Status))
	return nil
}

func (a *App) cmdAdminCandidates(ctx context.Context, _ []string) error {
	a.loading("Loading candidates...")
	if err := a.admin.LoadCandidates(ctx); err != nil {
		return err
	}
	a.showCandidates(a.admin.Candidates.Items)
	return nil
}

func (a *App) cmdAdminPrefer(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.info("Usage: prefer <id>")
		return nil
	}
	if len(a.admin.Candidates.Items) == 0 {
		if err := a.admin.LoadCandidates(ctx); err != nil {
			return err
		}
	}
	c, err := a.admin.TogglePreferred(ctx, args[0])
	if err != nil {
		return err
	}
	if c.Preferred {
		a.success(c.Name + " marked as preferred.")
	} else {
		a.success(c.Name + " is no longer preferred.")
	}
	return nil
}
