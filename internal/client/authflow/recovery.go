package authflow

import (
	"context"

	"github.com/dmitrijs2005/hrverify/internal/client/forms"
	"github.com/dmitrijs2005/hrverify/internal/client/models"
)

// ForgotPassword asks the backend to email a reset OTP. It is independent
// of the current step.
func (f *Flow) ForgotPassword(ctx context.Context, email string) error {
	if err := forms.Validate(forms.ForgotPasswordInput{Email: email}); err != nil {
		return err
	}
	return f.api.ForgotPassword(ctx, email)
}

// ResetPassword sets a new password using the emailed OTP.
func (f *Flow) ResetPassword(ctx context.Context, in forms.ResetPasswordInput) error {
	if err := forms.Validate(in); err != nil {
		return err
	}
	return f.api.ResetPassword(ctx, models.ResetPasswordRequest{
		Email:       in.Email,
		OTP:         in.OTP,
		NewPassword: in.NewPassword,
	})
}
