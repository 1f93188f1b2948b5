package models

type CompanyStatus string

const (
	CompanyPending  CompanyStatus = "PENDING"
	CompanyApproved CompanyStatus = "APPROVED"
	CompanyRejected CompanyStatus = "REJECTED"
)

type Company struct {
	ID             ID            `json:"id"`
	Name           string        `json:"name"`
	Website        string        `json:"website"`
	Industry       string        `json:"industry"`
	Size           string        `json:"size,omitempty"`
	Description    string        `json:"description,omitempty"`
	Status         CompanyStatus `json:"status"`
	SubmittedDate  string        `json:"submittedDate,omitempty"`
	CreatedAt      string        `json:"createdAt,omitempty"`
	HRContactCount int           `json:"hrContacts"`
}

// CompanyProfileInput is the body of POST/PUT /api/company/profile.
type CompanyProfileInput struct {
	Name        string `json:"name" validate:"required"`
	Website     string `json:"website" validate:"omitempty,url"`
	Industry    string `json:"industry" validate:"required"`
	Size        string `json:"size,omitempty"`
	Description string `json:"description,omitempty"`
}
