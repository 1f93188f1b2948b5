package models

// SearchType selects how /api/candidate/verify looks a contact up.
type SearchType string

const (
	SearchByEmail SearchType = "email"
	SearchByPhone SearchType = "phone"
)

type VerifyRequest struct {
	SearchType  SearchType `json:"searchType" validate:"required,oneof=email phone"`
	SearchValue string     `json:"searchValue" validate:"required"`
}

// Verification outcomes reported in VerifyResult.Status.
const (
	VerifyVerified   = "VERIFIED"
	VerifyNotFound   = "NOT_FOUND"
	VerifySuspicious = "SUSPICIOUS"
)

type VerifyResult struct {
	Status       string `json:"status"`
	Company      string `json:"company,omitempty"`
	HRName       string `json:"hrName,omitempty"`
	Department   string `json:"department,omitempty"`
	VerifiedDate string `json:"verifiedDate,omitempty"`
	Warning      string `json:"warning,omitempty"`
}

type Candidate struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Skills    string `json:"skills,omitempty"`
	Preferred bool   `json:"preferred"`
}

type AdminStats struct {
	TotalCompanies   int `json:"totalCompanies"`
	PendingApprovals int `json:"pendingApprovals"`
	TotalContacts    int `json:"totalContacts"`
	FlaggedReports   int `json:"flaggedReports"`
}
