// Package bulkcsv reads and writes the CSV files used for bulk import,
// bulk delete and export of HR contacts.
//
// Import/export header: name,email,phone,department,title (an extra company
// column is accepted on import). Bulk delete: one column, email or phone.
package bulkcsv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/hrverify/internal/client/models"
)

var (
	ErrEmpty          = errors.New("csv file is empty")
	ErrMissingColumns = errors.New("csv header lacks required columns")
)

// Header is the column order of exported files.
var Header = []string{"name", "email", "phone", "department", "title"}

// IdentifierKind names the single column of a bulk delete file.
type IdentifierKind string

const (
	ByEmail IdentifierKind = "email"
	ByPhone IdentifierKind = "phone"
)

type Identifier struct {
	Kind  IdentifierKind
	Value string
}

// Matches reports whether c has exactly this email or phone.
func (id Identifier) Matches(c models.HRContact) bool {
	switch id.Kind {
	case ByEmail:
		return c.Email == id.Value
	case ByPhone:
		return c.Phone == id.Value
	}
	return false
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

func readHeader(cr *csv.Reader) (map[string]int, error) {
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	return cols, nil
}

func field(rec []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// ParseContacts maps rows by header name. Rows without a name or an email
// are dropped without error.
func ParseContacts(r io.Reader) ([]models.ContactInput, error) {
	cr := newReader(r)
	cols, err := readHeader(cr)
	if err != nil {
		return nil, err
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("%w: name", ErrMissingColumns)
	}
	if _, ok := cols["email"]; !ok {
		return nil, fmt.Errorf("%w: email", ErrMissingColumns)
	}

	var out []models.ContactInput
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		c := models.ContactInput{
			Name:       field(rec, cols, "name"),
			Email:      field(rec, cols, "email"),
			Phone:      field(rec, cols, "phone"),
			Department: field(rec, cols, "department"),
			Title:      field(rec, cols, "title"),
			Company:    field(rec, cols, "company"),
		}
		if c.Name == "" || c.Email == "" {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseIdentifiers reads a bulk delete file. The header decides whether
// values are emails or phones; blank rows are skipped.
func ParseIdentifiers(r io.Reader) ([]Identifier, error) {
	cr := newReader(r)
	cols, err := readHeader(cr)
	if err != nil {
		return nil, err
	}

	var kind IdentifierKind
	switch {
	case hasColumn(cols, "email"):
		kind = ByEmail
	case hasColumn(cols, "phone"):
		kind = ByPhone
	default:
		return nil, fmt.Errorf("%w: email or phone", ErrMissingColumns)
	}

	var out []Identifier
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if v := field(rec, cols, string(kind)); v != "" {
			out = append(out, Identifier{Kind: kind, Value: v})
		}
	}
	return out, nil
}

func hasColumn(cols map[string]int, name string) bool {
	_, ok := cols[name]
	return ok
}

// Resolve returns the contacts matched by at least one identifier, in the
// order they appear in contacts.
func Resolve(ids []Identifier, contacts []models.HRContact) []models.HRContact {
	var out []models.HRContact
	for _, c := range contacts {
		for _, id := range ids {
			if id.Matches(c) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// WriteContacts writes contacts with Header as the first line.
func WriteContacts(w io.Writer, contacts []models.HRContact) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, c := range contacts {
		if err := cw.Write([]string{c.Name, c.Email, c.Phone, c.Department, c.Title}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeContacts renders parsed rows back to CSV for upload.
func EncodeContacts(in []models.ContactInput) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(Header); err != nil {
		return nil, err
	}
	for _, c := range in {
		if err := cw.Write([]string{c.Name, c.Email, c.Phone, c.Department, c.Title}); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeIdentifiers renders a bulk delete file.
func EncodeIdentifiers(ids []Identifier) ([]byte, error) {
	if len(ids) == 0 {
		return nil, ErrEmpty
	}
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	kind := ids[0].Kind
	if err := cw.Write([]string{string(kind)}); err != nil {
		return nil, err
	}
	for _, id := range ids {
		if id.Kind != kind {
			continue
		}
		if err := cw.Write([]string{id.Value}); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
