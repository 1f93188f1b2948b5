package controllers

import (
	"context"

	"github.com/dmitrijs2005/hrverify/internal/client/forms"
	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/dmitrijs2005/hrverify/internal/logging"
)

type CandidateAPI interface {
	Verify(ctx context.Context, req models.VerifyRequest) (*models.VerifyResult, error)
	SubmitReport(ctx context.Context, in models.ReportInput) (*models.Report, error)
	CandidateReports(ctx context.Context) ([]models.Report, error)
}

type Candidate struct {
	api CandidateAPI
	log logging.Logger

	Reports    List[models.Report]
	LastResult *models.VerifyResult
}

func NewCandidate(api CandidateAPI, log logging.Logger) *Candidate {
	return &Candidate{api: api, log: orNop(log)}
}

// Verify looks a contact up by email or phone.
func (c *Candidate) Verify(ctx context.Context, by models.SearchType, value string) (*models.VerifyResult, error) {
	req := models.VerifyRequest{SearchType: by, SearchValue: value}
	if err := forms.Validate(req); err != nil {
		return nil, err
	}

	res, err := c.api.Verify(ctx, req)
	if err != nil {
		return nil, err
	}
	c.LastResult = res
	return res, nil
}

// Report files a report about a contact. At least one of email or phone is
// required along with a reason.
func (c *Candidate) Report(ctx context.Context, in models.ReportInput) (*models.Report, error) {
	if err := forms.Validate(in); err != nil {
		return nil, err
	}

	rep, err := c.api.SubmitReport(ctx, in)
	if err != nil {
		return nil, err
	}
	c.Reports.Append(*rep)
	c.log.Info(ctx, "report submitted", "id", rep.ID)
	return rep, nil
}

func (c *Candidate) LoadReports(ctx context.Context) error {
	return c.Reports.Load(ctx, c.api.CandidateReports)
}

func orNop(log logging.Logger) logging.Logger {
	if log == nil {
		return logging.Nop()
	}
	return log
}
