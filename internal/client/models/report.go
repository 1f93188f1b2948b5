package models

type ReportStatus string

const (
	ReportPending     ReportStatus = "PENDING"
	ReportUnderReview ReportStatus = "UNDER_REVIEW"
	ReportResolved    ReportStatus = "RESOLVED"
	ReportRejected    ReportStatus = "REJECTED"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportPending, ReportUnderReview, ReportResolved, ReportRejected:
		return true
	}
	return false
}

type Report struct {
	ID           ID           `json:"id"`
	HRName       string       `json:"hrName,omitempty"`
	HREmail      string       `json:"hrEmail,omitempty"`
	HRPhone      string       `json:"hrPhone,omitempty"`
	Reason       string       `json:"reason"`
	DocumentPath string       `json:"documentPath,omitempty"`
	Status       ReportStatus `json:"status"`
	ReportedAt   string       `json:"reportedAt,omitempty"`
}

// ReportInput is the multipart form of POST /api/candidate/report.
// DocumentPath is a local file attached as "document".
type ReportInput struct {
	HRName       string `form:"hrName"`
	HREmail      string `form:"hrEmail" validate:"omitempty,email"`
	HRPhone      string `form:"hrPhone" validate:"required_without=HREmail"`
	Reason       string `form:"reason" validate:"required"`
	DocumentPath string `form:"-"`
}
