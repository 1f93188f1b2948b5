package controllers

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/hrverify/internal/client/client"
	"github.com/dmitrijs2005/hrverify/internal/client/forms"
	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidate_Verify(t *testing.T) {
	ctx := context.Background()
	be := &fakeBackend{contacts: []models.HRContact{{ID: "1", Name: "Ravi", Email: "ravi@acme.io", Phone: "9000000000"}}}
	c := NewCandidate(be, nil)

	_, err := c.Verify(ctx, "fax", "123")
	assert.ErrorIs(t, err, forms.ErrValidation)
	_, err = c.Verify(ctx, models.SearchByEmail, "")
	assert.ErrorIs(t, err, forms.ErrValidation)
	assert.Empty(t, be.calls)

	res, err := c.Verify(ctx, models.SearchByPhone, "9000000000")
	require.NoError(t, err)
	assert.Equal(t, models.VerifyVerified, res.Status)
	assert.Same(t, res, c.LastResult)

	res, err = c.Verify(ctx, models.SearchByEmail, "fake@scam.io")
	require.NoError(t, err)
	assert.Equal(t, models.VerifyNotFound, res.Status)
}

func TestCandidate_Report(t *testing.T) {
	ctx := context.Background()
	be := &fakeBackend{}
	c := NewCandidate(be, nil)

	_, err := c.Report(ctx, models.ReportInput{HRName: "X", Reason: "fee"})
	assert.ErrorIs(t, err, forms.ErrValidation)
	_, err = c.Report(ctx, models.ReportInput{HREmail: "x@y.io"})
	assert.ErrorIs(t, err, forms.ErrValidation)
	assert.Empty(t, be.calls)

	rep, err := c.Report(ctx, models.ReportInput{HREmail: "x@y.io", Reason: "asked for a fee"})
	require.NoError(t, err)
	assert.Equal(t, []models.Report{*rep}, c.Reports.Items)

	require.NoError(t, c.LoadReports(ctx))
	assert.Len(t, c.Reports.Items, 1)

	be.err = client.ErrUnavailable
	require.Error(t, c.LoadReports(ctx))
	assert.Empty(t, c.Reports.Items)
	assert.Equal(t, client.NetworkErrorMessage, c.Reports.Err)
}
