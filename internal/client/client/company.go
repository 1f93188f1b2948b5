package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/hrverify/internal/client/models"
)

func (c *Client) CompanyProfile(ctx context.Context) (*models.Company, error) {
	var resp models.Company
	if err := c.doJSON(ctx, http.MethodGet, "/api/company/profile", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateCompanyProfile(ctx context.Context, in models.CompanyProfileInput) (*models.Company, error) {
	var resp models.Company
	if err := c.doJSON(ctx, http.MethodPost, "/api/company/profile", nil, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateCompanyProfile(ctx context.Context, in models.CompanyProfileInput) (*models.Company, error) {
	var resp models.Company
	if err := c.doJSON(ctx, http.MethodPut, "/api/company/profile", nil, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CompanyContacts(ctx context.Context) ([]models.HRContact, error) {
	var resp []models.HRContact
	if err := c.doJSON(ctx, http.MethodGet, "/api/company/hr-contacts", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CreateCompanyContact(ctx context.Context, in models.ContactInput) (*models.HRContact, error) {
	var resp models.HRContact
	if err := c.doJSON(ctx, http.MethodPost, "/api/company/hr-contacts", nil, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteCompanyContact(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/company/hr-contacts/"+url.PathEscape(id), nil, nil, nil)
}

// DeleteCompanyContactByDetails sends the identifying fields as a DELETE body.
func (c *Client) DeleteCompanyContactByDetails(ctx context.Context, d models.ContactDetails) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/company/hr-contacts/by-details", nil, d, nil)
}

// BulkCreateCompanyContacts uploads a CSV as the "file" part and returns
// the contacts the backend created.
func (c *Client) BulkCreateCompanyContacts(ctx context.Context, csv FormFile) ([]models.HRContact, error) {
	csv.Field = "file"
	var resp []models.HRContact
	if err := c.doMultipart(ctx, http.MethodPost, "/api/company/hr-contacts/bulk", nil, []FormFile{csv}, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// BulkDeleteCompanyContacts uploads a single-column email or phone CSV.
func (c *Client) BulkDeleteCompanyContacts(ctx context.Context, csv FormFile) error {
	csv.Field = "file"
	return c.doMultipart(ctx, http.MethodPost, "/api/company/hr-contacts/bulk-delete", nil, []FormFile{csv}, nil)
}

func (c *Client) ReportedContacts(ctx context.Context) ([]models.HRContact, error) {
	var resp []models.HRContact
	if err := c.doJSON(ctx, http.MethodGet, "/api/company/reported-contacts", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
