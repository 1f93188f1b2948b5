package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/fatih/color"
)

var (
	errColor  = color.New(color.FgRed)
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	dimColor  = color.New(color.Faint)
)

func (a *App) fail(msg string)    { _, _ = errColor.Fprintln(a.out, msg) }
func (a *App) success(msg string) { _, _ = okColor.Fprintln(a.out, msg) }
func (a *App) warn(msg string)    { _, _ = warnColor.Fprintln(a.out, msg) }
func (a *App) info(msg string)    { fmt.Fprintln(a.out, msg) }
func (a *App) loading(msg string) { _, _ = dimColor.Fprintln(a.out, msg) }

func (a *App) table(header []string, rows [][]string) {
	if len(rows) == 0 {
		a.info("(no entries)")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	_ = tw.Flush()
}

func (a *App) showContacts(cs []models.HRContact) {
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{c.ID.String(), c.Name, c.Email, c.Phone, c.Department, c.Title, c.Company, string(c.Status), reportedMark(c.Reported)})
	}
	a.table([]string{"ID", "NAME", "EMAIL", "PHONE", "DEPARTMENT", "TITLE", "COMPANY", "STATUS", "REPORTED"}, rows)
}

func (a *App) showCompanies(cs []models.Company) {
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{c.ID.String(), c.Name, c.Industry, c.Size, c.Website, string(c.Status), fmt.Sprint(c.HRContactCount), c.SubmittedDate})
	}
	a.table([]string{"ID", "NAME", "INDUSTRY", "SIZE", "WEBSITE", "STATUS", "CONTACTS", "SUBMITTED"}, rows)
}

func (a *App) showReports(rs []models.Report) {
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, []string{r.ID.String(), r.HRName, r.HREmail, r.HRPhone, r.Reason, string(r.Status), r.ReportedAt})
	}
	a.table([]string{"ID", "HR NAME", "HR EMAIL", "HR PHONE", "REASON", "STATUS", "REPORTED AT"}, rows)
}

func (a *App) showCandidates(cs []models.Candidate) {
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		pref := ""
		if c.Preferred {
			pref = "★"
		}
		rows = append(rows, []string{c.ID.String(), c.Name, c.Email, c.Phone, c.Skills, pref})
	}
	a.table([]string{"ID", "NAME", "EMAIL", "PHONE", "SKILLS", "PREFERRED"}, rows)
}

func (a *App) showCompany(c *models.Company) {
	if c == nil {
		a.info("No company profile yet.")
		return
	}
	a.table([]string{"FIELD", "VALUE"}, [][]string{
		{"Name", c.Name},
		{"Website", c.Website},
		{"Industry", c.Industry},
		{"Size", c.Size},
		{"Description", c.Description},
		{"Status", string(c.Status)},
		{"Created", c.CreatedAt},
	})
}

func (a *App) showVerifyResult(r *models.VerifyResult) {
	switch r.Status {
	case models.VerifyVerified:
		a.success("✓ Verified HR contact")
	case models.VerifySuspicious:
		a.warn("! Suspicious contact")
	default:
		a.fail("✗ Not found in verified contacts")
	}
	if r.HRName != "" {
		a.info(fmt.Sprintf("  Name: %s", r.HRName))
	}
	if r.Company != "" {
		a.info(fmt.Sprintf("  Company: %s", r.Company))
	}
	if r.Department != "" {
		a.info(fmt.Sprintf("  Department: %s", r.Department))
	}
	if r.VerifiedDate != "" {
		a.info(fmt.Sprintf("  Verified: %s", r.VerifiedDate))
	}
	if r.Warning != "" {
		a.warn("  " + r.Warning)
	}
}

func reportedMark(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
