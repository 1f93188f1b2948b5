package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/hrverify/internal/client/models"
)

type statusParams struct {
	Status string `url:"status,omitempty"`
}

type preferredParams struct {
	Preferred bool `url:"preferred"`
}

func (c *Client) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var resp models.AdminStats
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/dashboard/stats", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Companies lists companies. An empty status or "all" disables the filter.
func (c *Client) Companies(ctx context.Context, status string) ([]models.Company, error) {
	p := statusParams{}
	if status != "" && !strings.EqualFold(status, "all") {
		p.Status = strings.ToUpper(status)
	}

	var resp []models.Company
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/companies", p, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) ApproveCompany(ctx context.Context, id string) (*models.Company, error) {
	return c.companyAction(ctx, id, "approve")
}

func (c *Client) RejectCompany(ctx context.Context, id string) (*models.Company, error) {
	return c.companyAction(ctx, id, "reject")
}

func (c *Client) companyAction(ctx context.Context, id, action string) (*models.Company, error) {
	var resp models.Company
	path := "/api/admin/companies/" + url.PathEscape(id) + "/" + action
	if err := c.doJSON(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AdminContacts(ctx context.Context) ([]models.HRContact, error) {
	var resp []models.HRContact
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/hr-contacts", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CreateAdminContact(ctx context.Context, in models.ContactInput) (*models.HRContact, error) {
	var resp models.HRContact
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/hr-contacts", nil, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteAdminContact(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/hr-contacts/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) SetContactStatus(ctx context.Context, id string, status models.ContactStatus) (*models.HRContact, error) {
	var resp models.HRContact
	path := "/api/admin/hr-contacts/" + url.PathEscape(id) + "/status"
	p := statusParams{Status: strings.ToUpper(string(status))}
	if err := c.doJSON(ctx, http.MethodPut, path, p, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// BulkCreateAdminContacts posts the batch as a JSON array.
func (c *Client) BulkCreateAdminContacts(ctx context.Context, in []models.ContactInput) ([]models.HRContact, error) {
	var resp []models.HRContact
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/hr-contacts/bulk", nil, in, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// BulkDeleteAdminContacts sends the id list as a DELETE body.
func (c *Client) BulkDeleteAdminContacts(ctx context.Context, ids []string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/hr-contacts/bulk", nil, ids, nil)
}

func (c *Client) AdminReports(ctx context.Context, status models.ReportStatus) ([]models.Report, error) {
	var resp []models.Report
	p := statusParams{Status: string(status)}
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/reports", p, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) SetReportStatus(ctx context.Context, id string, status models.ReportStatus) (*models.Report, error) {
	var resp models.Report
	path := "/api/admin/reports/" + url.PathEscape(id) + "/status"
	if err := c.doJSON(ctx, http.MethodPut, path, statusParams{Status: string(status)}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Candidates(ctx context.Context) ([]models.Candidate, error) {
	var resp []models.Candidate
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/candidates", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) SetCandidatePreferred(ctx context.Context, id string, preferred bool) (*models.Candidate, error) {
	var resp models.Candidate
	path := "/api/admin/candidates/" + url.PathEscape(id) + "/preferred"
	if err := c.doJSON(ctx, http.MethodPut, path, preferredParams{Preferred: preferred}, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
