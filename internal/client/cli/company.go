package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/dmitrijs2005/hrverify/internal/client/routes"
	"github.com/dmitrijs2005/hrverify/internal/filex"
)

func (a *App) companyCommands() []Command {
	return []Command{
		{Name: "contacts", Help: "reload and list your HR contacts", Run: a.cmdCompanyContacts},
		{Name: "search", Usage: "<text>", Help: "filter loaded contacts", Run: a.cmdCompanySearch},
		{Name: "add", Help: "add an HR contact", Run: a.cmdCompanyAdd},
		{Name: "delete", Usage: "<id>", Help: "delete an HR contact", Run: a.cmdCompanyDelete},
		{Name: "delete-by", Help: "delete by name and email or phone", Run: a.cmdCompanyDeleteBy},
		{Name: "import", Usage: "<file.csv>", Help: "bulk add (name,email,phone,department,title)", Run: a.cmdCompanyImport},
		{Name: "bulk-delete", Usage: "<file.csv>", Help: "bulk delete (single email or phone column)", Run: a.cmdCompanyBulkDelete},
		{Name: "export", Usage: "<file.csv>", Help: "save contacts as CSV", Run: a.cmdCompanyExport},
		{Name: "reported", Help: "contacts reported by candidates", Run: a.cmdCompanyReported},
		{Name: "profile", Help: "show company profile", Run: a.cmdCompanyProfile},
		{Name: "edit-profile", Help: "open the company details form", Run: a.goTo(routes.CompanyDetails)},
	}
}

func (a *App) companyDetailsCommands() []Command {
	return []Command{
		{Name: "profile", Help: "show company profile", Run: a.cmdCompanyProfile},
		{Name: "save", Help: "create or update the company profile", Run: a.cmdCompanySave},
	}
}

func (a *App) loadCompany(ctx context.Context) error {
	a.loading("Loading HR contacts...")
	if err := a.company.LoadProfile(ctx); err != nil {
		a.log.Debug(ctx, "company profile unavailable", "error", err)
	}
	if err := a.company.LoadContacts(ctx); err != nil {
		return err
	}
	a.info(fmt.Sprintf("%d HR contacts.", len(a.company.Contacts.Items)))
	return nil
}

func (a *App) cmdCompanyContacts(ctx context.Context, _ []string) error {
	if err := a.loadCompany(ctx); err != nil {
		return err
	}
	a.showContacts(a.company.Contacts.Items)
	return nil
}

func (a *App) cmdCompanySearch(_ context.Context, args []string) error {
	a.showContacts(a.company.Search(strings.Join(args, " ")))
	return nil
}

// askContact prompts for a contact, offering def as the defaults.
func (a *App) askContact(def models.ContactInput) (models.ContactInput, error) {
	in := def
	var err error
	if in.Name, err = a.ask("Name", def.Name); err != nil {
		return in, err
	}
	if in.Email, err = a.ask("Email", def.Email); err != nil {
		return in, err
	}
	if in.Phone, err = a.ask("Phone (optional, '-' to clear)", def.Phone); err != nil {
		return in, err
	}
	if in.Department, err = a.ask("Department (optional, '-' to clear)", def.Department); err != nil {
		return in, err
	}
	in.Title, err = a.ask("Title (optional, '-' to clear)", def.Title)
	return in, err
}

func (a *App) cmdCompanyAdd(ctx context.Context, _ []string) error {
	in, err := a.askContact(a.contactDraft)
	if err != nil {
		return err
	}
	hc, err := a.company.AddContact(ctx, in)
	if err != nil {
		a.contactDraft = in
		return err
	}
	a.contactDraft = models.ContactInput{}
	a.success("HR contact added (id " + hc.ID.String() + ").")
	return nil
}

func (a *App) cmdCompanyDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.info("Usage: delete <id>")
		return nil
	}
	if err := a.company.DeleteContact(ctx, args[0], a); err != nil {
		return err
	}
	a.success("HR contact deleted.")
	return nil
}

func (a *App) cmdCompanyDeleteBy(ctx context.Context, _ []string) error {
	var d models.ContactDetails
	var err error
	if d.Name, err = a.ask("Name", ""); err != nil {
		return err
	}
	if d.Email, err = a.ask("Email", ""); err != nil {
		return err
	}
	if d.Phone, err = a.ask("Phone", ""); err != nil {
		return err
	}
	if err := a.company.DeleteByDetails(ctx, d, a); err != nil {
		return err
	}
	a.success("HR contact deleted.")
	return nil
}

func (a *App) cmdCompanyImport(ctx context.Context, args []string) error {
	f, err := a.openArg(args, "CSV file to import")
	if err != nil {
		return err
	}
	defer f.Close()

	a.loading("Uploading HR contacts...")
	created, err := a.company.BulkImport(ctx, f)
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("Bulk upload successful! %d contacts added.", len(created)))
	return nil
}

func (a *App) cmdCompanyBulkDelete(ctx context.Context, args []string) error {
	f, err := a.openArg(args, "CSV file with an email or phone column")
	if err != nil {
		return err
	}
	defer f.Close()

	a.loading("Deleting HR contacts...")
	removed, err := a.company.BulkDelete(ctx, f, a)
	if err != nil {
		return err
	}
	a.success(fmt.Sprintf("Bulk delete successful! %d contacts removed.", len(removed)))
	return nil
}

func (a *App) cmdCompanyExport(_ context.Context, args []string) error {
	path := "hr_contacts.csv"
	if len(args) > 0 {
		path = args[0]
	}
	if err := filex.EnsureParentDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.company.Export(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.success(fmt.Sprintf("Exported %d contacts to %s.", len(a.company.Contacts.Items), path))
	return nil
}

func (a *App) cmdCompanyReported(ctx context.Context, _ []string) error {
	a.loading("Loading reported contacts...")
	if err := a.company.LoadReported(ctx); err != nil {
		return err
	}
	a.showContacts(a.company.Reported.Items)
	return nil
}

func (a *App) cmdCompanyProfile(ctx context.Context, _ []string) error {
	if err := a.company.LoadProfile(ctx); err != nil {
		return err
	}
	a.showCompany(a.company.Profile)
	return nil
}

func (a *App) cmdCompanySave(ctx context.Context, _ []string) error {
	var cur models.Company
	if a.company.Profile != nil {
		cur = *a.company.Profile
	}

	var in models.CompanyProfileInput
	var err error
	if in.Name, err = a.ask("Company name", cur.Name); err != nil {
		return err
	}
	if in.Website, err = a.ask("Website", cur.Website); err != nil {
		return err
	}
	if in.Industry, err = a.ask("Industry", cur.Industry); err != nil {
		return err
	}
	if in.Size, err = a.ask("Company size", cur.Size); err != nil {
		return err
	}
	if in.Description, err = a.ask("Description", cur.Description); err != nil {
		return err
	}

	if _, err := a.company.SaveProfile(ctx, in); err != nil {
		return err
	}
	a.success("Company profile saved.")
	a.navigate(ctx, routes.CompanyDashboard)
	return nil
}

// openArg opens the file named by args[0], asking for it when absent.
func (a *App) openArg(args []string, prompt string) (*os.File, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		var err error
		if path, err = a.ask(prompt, ""); err != nil {
			return nil, err
		}
	}
	return os.Open(path)
}
