package models

import "strings"

type ContactStatus string

const (
	ContactActive    ContactStatus = "ACTIVE"
	ContactSuspended ContactStatus = "SUSPENDED"
)

type HRContact struct {
	ID           ID            `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone,omitempty"`
	Department   string        `json:"department,omitempty"`
	Title        string        `json:"title,omitempty"`
	Company      string        `json:"company,omitempty"`
	Status       ContactStatus `json:"status,omitempty"`
	VerifiedDate string        `json:"verifiedDate,omitempty"`
	Reported     bool          `json:"reported,omitempty"`
}

// Matches reports whether the contact's name, email or phone contains q.
// Name and email compare case-insensitively. An empty query matches everything.
func (c HRContact) Matches(q string) bool {
	if q == "" {
		return true
	}
	lq := strings.ToLower(q)
	return strings.Contains(strings.ToLower(c.Name), lq) ||
		strings.Contains(strings.ToLower(c.Email), lq) ||
		strings.Contains(strings.ToLower(c.Company), lq) ||
		(c.Phone != "" && strings.Contains(c.Phone, q))
}

// ContactInput is the create body for a single HR contact and the row shape
// of the bulk CSV.
type ContactInput struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
	Title      string `json:"title,omitempty"`
	Company    string `json:"company,omitempty"`
}

// ContactDetails identifies a contact for DELETE /by-details.
type ContactDetails struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Empty reports whether no identifying field is set.
func (d ContactDetails) Empty() bool {
	return d.Name == "" && d.Email == "" && d.Phone == ""
}

// Matches follows the backend's by-details rule: the name must match and
// either email or phone must match.
func (d ContactDetails) Matches(c HRContact) bool {
	if c.Name != d.Name {
		return false
	}
	return (d.Email != "" && c.Email == d.Email) || (d.Phone != "" && c.Phone == d.Phone)
}
