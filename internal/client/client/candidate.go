package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/hrverify/internal/client/models"
)

func (c *Client) Verify(ctx context.Context, req models.VerifyRequest) (*models.VerifyResult, error) {
	var resp models.VerifyResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/candidate/verify", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitReport posts the report as multipart form data, attaching
// in.DocumentPath as "document" when set.
func (c *Client) SubmitReport(ctx context.Context, in models.ReportInput) (*models.Report, error) {
	fields := []FormField{
		{Name: "hrName", Value: in.HRName},
		{Name: "hrEmail", Value: in.HREmail},
		{Name: "hrPhone", Value: in.HRPhone},
		{Name: "reason", Value: in.Reason},
	}

	var files []FormFile
	if in.DocumentPath != "" {
		f, err := OpenFormFile("document", in.DocumentPath)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	var resp models.Report
	if err := c.doMultipart(ctx, http.MethodPost, "/api/candidate/report", fields, files, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CandidateReports(ctx context.Context) ([]models.Report, error) {
	var resp []models.Report
	if err := c.doJSON(ctx, http.MethodGet, "/api/candidate/reports", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
