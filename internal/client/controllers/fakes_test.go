package controllers

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/hrverify/internal/client/bulkcsv"
	"github.com/dmitrijs2005/hrverify/internal/client/client"
	"github.com/dmitrijs2005/hrverify/internal/client/models"
)

// fakeBackend implements every controller API over in-memory slices.
type fakeBackend struct {
	nextID int
	calls  []string
	err    error

	contacts   []models.HRContact
	companies  []models.Company
	reports    []models.Report
	candidates []models.Candidate
	profile    *models.Company
	user       models.UserProfile

	bulkUploads    [][]models.ContactInput
	bulkDeletedCSV []string
	bulkDeletedIDs [][]string
	companyFilter  []string
	emptyResponses bool
}

func (f *fakeBackend) id() models.ID {
	f.nextID++
	return models.ID(fmt.Sprint(f.nextID))
}

func (f *fakeBackend) call(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeBackend) create(in models.ContactInput) models.HRContact {
	hc := models.HRContact{ID: f.id(), Name: in.Name, Email: in.Email, Phone: in.Phone,
		Department: in.Department, Title: in.Title, Status: models.ContactActive}
	f.contacts = append(f.contacts, hc)
	return hc
}

// Candidate

func (f *fakeBackend) Verify(_ context.Context, req models.VerifyRequest) (*models.VerifyResult, error) {
	if err := f.call("verify"); err != nil {
		return nil, err
	}
	for _, c := range f.contacts {
		if (req.SearchType == models.SearchByEmail && c.Email == req.SearchValue) ||
			(req.SearchType == models.SearchByPhone && c.Phone == req.SearchValue) {
			return &models.VerifyResult{Status: models.VerifyVerified, HRName: c.Name}, nil
		}
	}
	return &models.VerifyResult{Status: models.VerifyNotFound}, nil
}

func (f *fakeBackend) SubmitReport(_ context.Context, in models.ReportInput) (*models.Report, error) {
	if err := f.call("report"); err != nil {
		return nil, err
	}
	r := models.Report{ID: f.id(), HRName: in.HRName, HREmail: in.HREmail, HRPhone: in.HRPhone, Reason: in.Reason, Status: models.ReportPending}
	f.reports = append(f.reports, r)
	return &r, nil
}

func (f *fakeBackend) CandidateReports(context.Context) ([]models.Report, error) {
	if err := f.call("reports"); err != nil {
		return nil, err
	}
	return append([]models.Report(nil), f.reports...), nil
}

// Company

func (f *fakeBackend) CompanyProfile(context.Context) (*models.Company, error) {
	if err := f.call("profile"); err != nil {
		return nil, err
	}
	if f.profile == nil {
		return nil, &client.APIError{StatusCode: 404, Message: "Company profile not found"}
	}
	return f.profile, nil
}

func (f *fakeBackend) CreateCompanyProfile(_ context.Context, in models.CompanyProfileInput) (*models.Company, error) {
	if err := f.call("create-profile"); err != nil {
		return nil, err
	}
	f.profile = &models.Company{ID: f.id(), Name: in.Name, Website: in.Website, Industry: in.Industry, Status: models.CompanyPending}
	return f.profile, nil
}

func (f *fakeBackend) UpdateCompanyProfile(_ context.Context, in models.CompanyProfileInput) (*models.Company, error) {
	if err := f.call("update-profile"); err != nil {
		return nil, err
	}
	f.profile.Name, f.profile.Website, f.profile.Industry = in.Name, in.Website, in.Industry
	return f.profile, nil
}

func (f *fakeBackend) CompanyContacts(context.Context) ([]models.HRContact, error) {
	if err := f.call("contacts"); err != nil {
		return nil, err
	}
	return append([]models.HRContact(nil), f.contacts...), nil
}

func (f *fakeBackend) CreateCompanyContact(_ context.Context, in models.ContactInput) (*models.HRContact, error) {
	if err := f.call("create-contact"); err != nil {
		return nil, err
	}
	hc := f.create(in)
	return &hc, nil
}

func (f *fakeBackend) DeleteCompanyContact(_ context.Context, id string) error {
	if err := f.call("delete-contact"); err != nil {
		return err
	}
	f.drop(func(hc models.HRContact) bool { return hc.ID == models.ID(id) })
	return nil
}

func (f *fakeBackend) DeleteCompanyContactByDetails(_ context.Context, d models.ContactDetails) error {
	if err := f.call("delete-by-details"); err != nil {
		return err
	}
	f.drop(d.Matches)
	return nil
}

func (f *fakeBackend) BulkCreateCompanyContacts(_ context.Context, csv client.FormFile) ([]models.HRContact, error) {
	if err := f.call("bulk-create"); err != nil {
		return nil, err
	}
	rows, err := bulkcsv.ParseContacts(csv.Content)
	if err != nil {
		return nil, err
	}
	f.bulkUploads = append(f.bulkUploads, rows)
	var out []models.HRContact
	for _, r := range rows {
		out = append(out, f.create(r))
	}
	return out, nil
}

func (f *fakeBackend) BulkDeleteCompanyContacts(_ context.Context, csv client.FormFile) error {
	if err := f.call("bulk-delete"); err != nil {
		return err
	}
	data, _ := io.ReadAll(csv.Content)
	f.bulkDeletedCSV = append(f.bulkDeletedCSV, string(data))
	return nil
}

func (f *fakeBackend) ReportedContacts(context.Context) ([]models.HRContact, error) {
	if err := f.call("reported"); err != nil {
		return nil, err
	}
	var out []models.HRContact
	for _, c := range f.contacts {
		if c.Reported {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeBackend) drop(match func(models.HRContact) bool) {
	kept := f.contacts[:0]
	for _, c := range f.contacts {
		if !match(c) {
			kept = append(kept, c)
		}
	}
	f.contacts = kept
}

// Admin

func (f *fakeBackend) AdminStats(context.Context) (*models.AdminStats, error) {
	if err := f.call("stats"); err != nil {
		return nil, err
	}
	return &models.AdminStats{TotalCompanies: len(f.companies), TotalContacts: len(f.contacts)}, nil
}

func (f *fakeBackend) Companies(_ context.Context, status string) ([]models.Company, error) {
	if err := f.call("companies"); err != nil {
		return nil, err
	}
	f.companyFilter = append(f.companyFilter, status)
	return append([]models.Company(nil), f.companies...), nil
}

func (f *fakeBackend) ApproveCompany(_ context.Context, id string) (*models.Company, error) {
	return f.decide(id, models.CompanyApproved)
}

func (f *fakeBackend) RejectCompany(_ context.Context, id string) (*models.Company, error) {
	return f.decide(id, models.CompanyRejected)
}

func (f *fakeBackend) decide(id string, s models.CompanyStatus) (*models.Company, error) {
	if err := f.call("decide"); err != nil {
		return nil, err
	}
	if f.emptyResponses {
		return &models.Company{}, nil
	}
	for i := range f.companies {
		if f.companies[i].ID == models.ID(id) {
			f.companies[i].Status = s
			c := f.companies[i]
			return &c, nil
		}
	}
	return nil, &client.APIError{StatusCode: 404, Message: "Company not found"}
}

func (f *fakeBackend) AdminContacts(ctx context.Context) ([]models.HRContact, error) {
	return f.CompanyContacts(ctx)
}

func (f *fakeBackend) CreateAdminContact(ctx context.Context, in models.ContactInput) (*models.HRContact, error) {
	return f.CreateCompanyContact(ctx, in)
}

func (f *fakeBackend) DeleteAdminContact(ctx context.Context, id string) error {
	return f.DeleteCompanyContact(ctx, id)
}

func (f *fakeBackend) SetContactStatus(_ context.Context, id string, s models.ContactStatus) (*models.HRContact, error) {
	if err := f.call("contact-status"); err != nil {
		return nil, err
	}
	if f.emptyResponses {
		return &models.HRContact{}, nil
	}
	for i := range f.contacts {
		if f.contacts[i].ID == models.ID(id) {
			f.contacts[i].Status = s
			c := f.contacts[i]
			return &c, nil
		}
	}
	return nil, &client.APIError{StatusCode: 404, Message: "HR contact not found"}
}

func (f *fakeBackend) BulkCreateAdminContacts(_ context.Context, in []models.ContactInput) ([]models.HRContact, error) {
	if err := f.call("admin-bulk-create"); err != nil {
		return nil, err
	}
	f.bulkUploads = append(f.bulkUploads, in)
	var out []models.HRContact
	for _, r := range in {
		out = append(out, f.create(r))
	}
	return out, nil
}

func (f *fakeBackend) BulkDeleteAdminContacts(_ context.Context, ids []string) error {
	if err := f.call("admin-bulk-delete"); err != nil {
		return err
	}
	f.bulkDeletedIDs = append(f.bulkDeletedIDs, ids)
	return nil
}

func (f *fakeBackend) AdminReports(_ context.Context, status models.ReportStatus) ([]models.Report, error) {
	if err := f.call("admin-reports"); err != nil {
		return nil, err
	}
	var out []models.Report
	for _, r := range f.reports {
		if status == "" || r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeBackend) SetReportStatus(_ context.Context, id string, s models.ReportStatus) (*models.Report, error) {
	if err := f.call("report-status"); err != nil {
		return nil, err
	}
	for i := range f.reports {
		if f.reports[i].ID == models.ID(id) {
			f.reports[i].Status = s
			r := f.reports[i]
			return &r, nil
		}
	}
	return nil, &client.APIError{StatusCode: 404, Message: "Report not found"}
}

func (f *fakeBackend) Candidates(context.Context) ([]models.Candidate, error) {
	if err := f.call("candidates"); err != nil {
		return nil, err
	}
	return append([]models.Candidate(nil), f.candidates...), nil
}

func (f *fakeBackend) SetCandidatePreferred(_ context.Context, id string, preferred bool) (*models.Candidate, error) {
	if err := f.call("preferred"); err != nil {
		return nil, err
	}
	for i := range f.candidates {
		if f.candidates[i].ID == models.ID(id) {
			f.candidates[i].Preferred = preferred
			c := f.candidates[i]
			return &c, nil
		}
	}
	return nil, &client.APIError{StatusCode: 404, Message: "Candidate not found"}
}

// Account

func (f *fakeBackend) Profile(context.Context) (*models.UserProfile, error) {
	if err := f.call("user-profile"); err != nil {
		return nil, err
	}
	u := f.user
	return &u, nil
}

func (f *fakeBackend) UpdateProfile(_ context.Context, in models.UserProfile) (*models.UserProfile, error) {
	if err := f.call("update-user"); err != nil {
		return nil, err
	}
	f.user = in
	return &in, nil
}

func (f *fakeBackend) ChangePassword(context.Context, models.PasswordChange) error {
	return f.call("change-password")
}

func (f *fakeBackend) UploadDocument(_ context.Context, path string) (*models.UploadResult, error) {
	if err := f.call("upload-document"); err != nil {
		return nil, err
	}
	return &models.UploadResult{Path: "documents/" + path}, nil
}

func (f *fakeBackend) UploadImage(_ context.Context, path string) (*models.UploadResult, error) {
	if err := f.call("upload-image"); err != nil {
		return nil, err
	}
	return &models.UploadResult{Path: "images/" + path}, nil
}

var (
	_ CandidateAPI = (*fakeBackend)(nil)
	_ CompanyAPI   = (*fakeBackend)(nil)
	_ AdminAPI     = (*fakeBackend)(nil)
	_ AccountAPI   = (*fakeBackend)(nil)

	_ CandidateAPI = (*client.Client)(nil)
	_ CompanyAPI   = (*client.Client)(nil)
	_ AdminAPI     = (*client.Client)(nil)
	_ AccountAPI   = (*client.Client)(nil)
)

var yes = ConfirmFunc(func(string) bool { return true })
var no = ConfirmFunc(func(string) bool { return false })
