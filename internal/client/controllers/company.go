package controllers

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/hrverify/internal/client/bulkcsv"
	"github.com/dmitrijs2005/hrverify/internal/client/client"
	"github.com/dmitrijs2005/hrverify/internal/client/forms"
	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/dmitrijs2005/hrverify/internal/logging"
)

type CompanyAPI interface {
	CompanyProfile(ctx context.Context) (*models.Company, error)
	CreateCompanyProfile(ctx context.Context, in models.CompanyProfileInput) (*models.Company, error)
	UpdateCompanyProfile(ctx context.Context, in models.CompanyProfileInput) (*models.Company, error)
	CompanyContacts(ctx context.Context) ([]models.HRContact, error)
	CreateCompanyContact(ctx context.Context, in models.ContactInput) (*models.HRContact, error)
	DeleteCompanyContact(ctx context.Context, id string) error
	DeleteCompanyContactByDetails(ctx context.Context, d models.ContactDetails) error
	BulkCreateCompanyContacts(ctx context.Context, csv client.FormFile) ([]models.HRContact, error)
	BulkDeleteCompanyContacts(ctx context.Context, csv client.FormFile) error
	ReportedContacts(ctx context.Context) ([]models.HRContact, error)
}

type Company struct {
	api CompanyAPI
	log logging.Logger

	Profile  *models.Company
	Contacts List[models.HRContact]
	Reported List[models.HRContact]
}

func NewCompany(api CompanyAPI, log logging.Logger) *Company {
	return &Company{api: api, log: orNop(log)}
}

func (c *Company) LoadProfile(ctx context.Context) error {
	p, err := c.api.CompanyProfile(ctx)
	if err != nil {
		c.Profile = nil
		return err
	}
	c.Profile = p
	return nil
}

// SaveProfile creates the profile on first use and updates it afterwards.
func (c *Company) SaveProfile(ctx context.Context, in models.CompanyProfileInput) (*models.Company, error) {
	if err := forms.Validate(in); err != nil {
		return nil, err
	}

	save := c.api.CreateCompanyProfile
	if c.Profile != nil && c.Profile.ID != "" {
		save = c.api.UpdateCompanyProfile
	}

	p, err := save(ctx, in)
	if err != nil {
		return nil, err
	}
	c.Profile = p
	return p, nil
}

func (c *Company) LoadContacts(ctx context.Context) error {
	return c.Contacts.Load(ctx, c.api.CompanyContacts)
}

func (c *Company) AddContact(ctx context.Context, in models.ContactInput) (*models.HRContact, error) {
	if err := forms.Validate(in); err != nil {
		return nil, err
	}
	hc, err := c.api.CreateCompanyContact(ctx, in)
	if err != nil {
		return nil, err
	}
	c.Contacts.Append(*hc)
	return hc, nil
}

func (c *Company) DeleteContact(ctx context.Context, id string, cf Confirmer) error {
	if err := confirm(cf, "Are you sure you want to delete this HR contact?"); err != nil {
		return err
	}
	if err := c.api.DeleteCompanyContact(ctx, id); err != nil {
		return err
	}
	c.Contacts.Remove(func(hc models.HRContact) bool { return hc.ID == models.ID(id) })
	return nil
}

// DeleteByDetails deletes by name plus email or phone.
func (c *Company) DeleteByDetails(ctx context.Context, d models.ContactDetails, cf Confirmer) error {
	if d.Empty() {
		return forms.Invalid("name", "provide at least one field to identify the contact")
	}
	if err := confirm(cf, "Are you sure you want to delete this HR contact?"); err != nil {
		return err
	}
	if err := c.api.DeleteCompanyContactByDetails(ctx, d); err != nil {
		return err
	}
	c.Contacts.Remove(d.Matches)
	return nil
}

// BulkImport parses r, drops incomplete rows and uploads the rest. The
// created contacts are appended to the list.
func (c *Company) BulkImport(ctx context.Context, r io.Reader) ([]models.HRContact, error) {
	rows, err := bulkcsv.ParseContacts(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoValidRow
	}

	data, err := bulkcsv.EncodeContacts(rows)
	if err != nil {
		return nil, err
	}

	created, err := c.api.BulkCreateCompanyContacts(ctx, client.FormFile{Name: "contacts.csv", Content: bytes.NewReader(data)})
	if err != nil {
		return nil, err
	}
	c.Contacts.Append(created...)
	c.log.Info(ctx, "bulk import finished", "sent", len(rows), "created", len(created))
	return created, nil
}

// BulkDelete resolves each email or phone of r against the loaded contacts
// and deletes the matches.
func (c *Company) BulkDelete(ctx context.Context, r io.Reader, cf Confirmer) ([]models.HRContact, error) {
	ids, err := bulkcsv.ParseIdentifiers(r)
	if err != nil {
		return nil, err
	}
	matched := bulkcsv.Resolve(ids, c.Contacts.Items)
	if len(matched) == 0 {
		return nil, ErrNoMatches
	}

	if err := confirm(cf, fmt.Sprintf("Delete %d HR contacts?", len(matched))); err != nil {
		return nil, err
	}

	data, err := bulkcsv.EncodeIdentifiers(matchedIdentifiers(ids, matched))
	if err != nil {
		return nil, err
	}
	if err := c.api.BulkDeleteCompanyContacts(ctx, client.FormFile{Name: "delete.csv", Content: bytes.NewReader(data)}); err != nil {
		return nil, err
	}

	gone := make(map[string]bool, len(matched))
	for _, m := range matched {
		gone[m.ID.String()] = true
	}
	c.Contacts.Remove(func(hc models.HRContact) bool { return gone[hc.ID.String()] })
	return matched, nil
}

// Export writes the loaded contacts as CSV.
func (c *Company) Export(w io.Writer) error {
	return bulkcsv.WriteContacts(w, c.Contacts.Items)
}

// Search filters loaded contacts locally.
func (c *Company) Search(q string) []models.HRContact {
	return c.Contacts.Filter(func(hc models.HRContact) bool { return hc.Matches(q) })
}

func (c *Company) LoadReported(ctx context.Context) error {
	return c.Reported.Load(ctx, c.api.ReportedContacts)
}

func matchedIdentifiers(ids []bulkcsv.Identifier, matched []models.HRContact) []bulkcsv.Identifier {
	var out []bulkcsv.Identifier
	for _, id := range ids {
		for _, m := range matched {
			if id.Matches(m) {
				out = append(out, id)
				break
			}
		}
	}
	return out
}
