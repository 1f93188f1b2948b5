package controllers

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/hrverify/internal/client/bulkcsv"
	"github.com/dmitrijs2005/hrverify/internal/client/forms"
	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/dmitrijs2005/hrverify/internal/logging"
)

type AdminAPI interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	Companies(ctx context.Context, status string) ([]models.Company, error)
	ApproveCompany(ctx context.Context, id string) (*models.Company, error)
	RejectCompany(ctx context.Context, id string) (*models.Company, error)
	AdminContacts(ctx context.Context) ([]models.HRContact, error)
	CreateAdminContact(ctx context.Context, in models.ContactInput) (*models.HRContact, error)
	DeleteAdminContact(ctx context.Context, id string) error
	SetContactStatus(ctx context.Context, id string, status models.ContactStatus) (*models.HRContact, error)
	BulkCreateAdminContacts(ctx context.Context, in []models.ContactInput) ([]models.HRContact, error)
	BulkDeleteAdminContacts(ctx context.Context, ids []string) error
	AdminReports(ctx context.Context, status models.ReportStatus) ([]models.Report, error)
	SetReportStatus(ctx context.Context, id string, status models.ReportStatus) (*models.Report, error)
	Candidates(ctx context.Context) ([]models.Candidate, error)
	SetCandidatePreferred(ctx context.Context, id string, preferred bool) (*models.Candidate, error)
}

type Admin struct {
	api AdminAPI
	log logging.Logger

	Stats *models.AdminStats

	Companies     List[models.Company]
	CompanyFilter string

	Contacts List[models.HRContact]

	Reports      List[models.Report]
	ReportFilter models.ReportStatus

	Candidates List[models.Candidate]
}

func NewAdmin(api AdminAPI, log logging.Logger) *Admin {
	return &Admin{api: api, log: orNop(log), CompanyFilter: "all"}
}

func (a *Admin) LoadStats(ctx context.Context) error {
	s, err := a.api.AdminStats(ctx)
	if err != nil {
		a.Stats = nil
		return err
	}
	a.Stats = s
	return nil
}

// LoadCompanies fetches companies with a server-side status filter
// ("all", "pending", "approved", "rejected").
func (a *Admin) LoadCompanies(ctx context.Context, status string) error {
	if status == "" {
		status = "all"
	}
	a.CompanyFilter = strings.ToLower(status)
	return a.Companies.Load(ctx, func(ctx context.Context) ([]models.Company, error) {
		return a.api.Companies(ctx, status)
	})
}

// SearchCompanies filters the loaded companies by name or industry.
func (a *Admin) SearchCompanies(q string) []models.Company {
	lq := strings.ToLower(q)
	return a.Companies.Filter(func(c models.Company) bool {
		return strings.Contains(strings.ToLower(c.Name), lq) || strings.Contains(strings.ToLower(c.Industry), lq)
	})
}

func (a *Admin) ApproveCompany(ctx context.Context, id string) (*models.Company, error) {
	return a.companyDecision(ctx, id, models.CompanyApproved, a.api.ApproveCompany)
}

func (a *Admin) RejectCompany(ctx context.Context, id string) (*models.Company, error) {
	return a.companyDecision(ctx, id, models.CompanyRejected, a.api.RejectCompany)
}

func (a *Admin) companyDecision(ctx context.Context, id string, status models.CompanyStatus,
	call func(context.Context, string) (*models.Company, error)) (*models.Company, error) {

	resp, err := call(ctx, id)
	if err != nil {
		return nil, err
	}

	byID := func(c models.Company) bool { return c.ID == models.ID(id) }
	updated := resp
	if updated == nil || updated.ID == "" {
		// Empty body: keep the local row and only move its status.
		cur, ok := a.Companies.Find(byID)
		if !ok {
			return nil, ErrNotFound
		}
		cur.Status = status
		updated = &cur
	}
	a.Companies.Replace(byID, *updated)
	return updated, nil
}

func (a *Admin) LoadContacts(ctx context.Context) error {
	return a.Contacts.Load(ctx, a.api.AdminContacts)
}

// SearchContacts filters loaded contacts by query and, when status is set,
// by status.
func (a *Admin) SearchContacts(q string, status models.ContactStatus) []models.HRContact {
	return a.Contacts.Filter(func(hc models.HRContact) bool {
		if status != "" && !strings.EqualFold(string(hc.Status), string(status)) {
			return false
		}
		return hc.Matches(q)
	})
}

func (a *Admin) AddContact(ctx context.Context, in models.ContactInput) (*models.HRContact, error) {
	if err := forms.Validate(in); err != nil {
		return nil, err
	}
	hc, err := a.api.CreateAdminContact(ctx, in)
	if err != nil {
		return nil, err
	}
	a.Contacts.Append(*hc)
	return hc, nil
}

func (a *Admin) DeleteContact(ctx context.Context, id string, cf Confirmer) error {
	if err := confirm(cf, "Are you sure you want to delete this HR contact?"); err != nil {
		return err
	}
	if err := a.api.DeleteAdminContact(ctx, id); err != nil {
		return err
	}
	a.Contacts.Remove(func(hc models.HRContact) bool { return hc.ID == models.ID(id) })
	return nil
}

// SetContactStatus activates or suspends a contact.
func (a *Admin) SetContactStatus(ctx context.Context, id string, status models.ContactStatus) (*models.HRContact, error) {
	status = models.ContactStatus(strings.ToUpper(string(status)))
	if status != models.ContactActive && status != models.ContactSuspended {
		return nil, forms.Invalid("status", fmt.Sprintf("status must be %s or %s", models.ContactActive, models.ContactSuspended))
	}

	resp, err := a.api.SetContactStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	byID := func(hc models.HRContact) bool { return hc.ID == models.ID(id) }
	updated := resp
	if updated == nil || updated.ID == "" {
		cur, ok := a.Contacts.Find(byID)
		if !ok {
			return nil, ErrNotFound
		}
		cur.Status = status
		updated = &cur
	}
	a.Contacts.Replace(byID, *updated)
	return updated, nil
}

// BulkImport parses r and posts the valid rows as one JSON batch.
func (a *Admin) BulkImport(ctx context.Context, r io.Reader) ([]models.HRContact, error) {
	rows, err := bulkcsv.ParseContacts(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoValidRow
	}

	created, err := a.api.BulkCreateAdminContacts(ctx, rows)
	if err != nil {
		return nil, err
	}
	a.Contacts.Append(created...)
	a.log.Info(ctx, "bulk import finished", "sent", len(rows), "created", len(created))
	return created, nil
}

// BulkDelete resolves the email or phone rows of r to loaded contacts and
// deletes them by id.
func (a *Admin) BulkDelete(ctx context.Context, r io.Reader, cf Confirmer) ([]models.HRContact, error) {
	ids, err := bulkcsv.ParseIdentifiers(r)
	if err != nil {
		return nil, err
	}
	matched := bulkcsv.Resolve(ids, a.Contacts.Items)
	if len(matched) == 0 {
		return nil, ErrNoMatches
	}

	if err := confirm(cf, fmt.Sprintf("Delete %d HR contacts?", len(matched))); err != nil {
		return nil, err
	}

	idList := make([]string, 0, len(matched))
	gone := make(map[string]bool, len(matched))
	for _, m := range matched {
		idList = append(idList, m.ID.String())
		gone[m.ID.String()] = true
	}

	if err := a.api.BulkDeleteAdminContacts(ctx, idList); err != nil {
		return nil, err
	}
	a.Contacts.Remove(func(hc models.HRContact) bool { return gone[hc.ID.String()] })
	return matched, nil
}

// LoadReports fetches reports; an empty status means all.
func (a *Admin) LoadReports(ctx context.Context, status models.ReportStatus) error {
	a.ReportFilter = status
	return a.Reports.Load(ctx, func(ctx context.Context) ([]models.Report, error) {
		return a.api.AdminReports(ctx, status)
	})
}

func (a *Admin) SetReportStatus(ctx context.Context, id string, status models.ReportStatus) (*models.Report, error) {
	status = models.ReportStatus(strings.ToUpper(string(status)))
	if !status.Valid() {
		return nil, forms.Invalid("status", fmt.Sprintf("unknown report status %q", status))
	}

	resp, err := a.api.SetReportStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	byID := func(r models.Report) bool { return r.ID == models.ID(id) }
	updated := resp
	if updated == nil || updated.ID == "" {
		cur, ok := a.Reports.Find(byID)
		if !ok {
			return nil, ErrNotFound
		}
		cur.Status = status
		updated = &cur
	}
	a.Reports.Replace(byID, *updated)
	return updated, nil
}

func (a *Admin) LoadCandidates(ctx context.Context) error {
	return a.Candidates.Load(ctx, a.api.Candidates)
}

// TogglePreferred flips the preferred flag of a loaded candidate.
func (a *Admin) TogglePreferred(ctx context.Context, id string) (*models.Candidate, error) {
	byID := func(c models.Candidate) bool { return c.ID == models.ID(id) }
	cur, ok := a.Candidates.Find(byID)
	if !ok {
		return nil, ErrNotFound
	}

	resp, err := a.api.SetCandidatePreferred(ctx, id, !cur.Preferred)
	if err != nil {
		return nil, err
	}

	updated := resp
	if updated == nil || updated.ID == "" {
		cur.Preferred = !cur.Preferred
		updated = &cur
	}
	a.Candidates.Replace(byID, *updated)
	return updated, nil
}
