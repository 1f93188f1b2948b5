package forms

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrValidation), "want ErrValidation, got %v", err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	return ve.Fields
}

func TestValidate_SignupInput(t *testing.T) {
	valid := SignupInput{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Secret:   "secret1",
		Role:     models.RoleCandidate,
	}
	require.NoError(t, Validate(valid))

	noPhone := valid
	noPhone.Phone = ""
	require.NoError(t, Validate(noPhone))

	tests := []struct {
		name  string
		mod   func(*SignupInput)
		field string
	}{
		{"short secret", func(s *SignupInput) { s.Secret = "12345" }, "password"},
		{"landline", func(s *SignupInput) { s.Phone = "0221234567" }, "phone"},
		{"nine digits", func(s *SignupInput) { s.Phone = "987654321" }, "phone"},
		{"letters", func(s *SignupInput) { s.Phone = "98765abcde" }, "phone"},
		{"missing name", func(s *SignupInput) { s.FullName = "" }, "fullName"},
		{"bad email", func(s *SignupInput) { s.Email = "not-an-email" }, "email"},
		{"bad role", func(s *SignupInput) { s.Role = "ROOT" }, "role"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mod(&in)
			fields := fieldsOf(t, Validate(in))
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	fields := fieldsOf(t, Validate(SignupInput{Email: "a@b.co", Secret: "1", Phone: "123", Role: models.RoleAdmin}))

	assert.Equal(t, "fullName is required", fields["fullName"])
	assert.Equal(t, "password must be at least 6 characters long", fields["password"])
	assert.Equal(t, "phone must be a valid 10-digit mobile number", fields["phone"])
}

func TestValidate_ContactInput(t *testing.T) {
	require.NoError(t, Validate(models.ContactInput{Name: "Ravi", Email: "ravi@acme.io"}))

	fields := fieldsOf(t, Validate(models.ContactInput{Phone: "9000000000"}))
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
}

func TestValidate_ReportInput(t *testing.T) {
	require.NoError(t, Validate(models.ReportInput{HRPhone: "9000000000", Reason: "asked for fee"}))
	require.NoError(t, Validate(models.ReportInput{HREmail: "x@y.io", Reason: "fake offer"}))

	fields := fieldsOf(t, Validate(models.ReportInput{Reason: "no contact given"}))
	assert.Contains(t, fields, "hrPhone")

	fields = fieldsOf(t, Validate(models.ReportInput{HREmail: "x@y.io"}))
	assert.Contains(t, fields, "reason")
}

func TestValidate_OtpAndCodes(t *testing.T) {
	require.NoError(t, Validate(OtpInput{OTP: "123456"}))
	assert.Contains(t, fieldsOf(t, Validate(OtpInput{OTP: "12345"})), "otp")
	assert.Contains(t, fieldsOf(t, Validate(VerificationInput{Code: "12a456"})), "code")
	assert.Contains(t, fieldsOf(t, Validate(AdminCodeInput{})), "adminCode")
}

func TestValidate_PasswordChange(t *testing.T) {
	require.NoError(t, Validate(PasswordChangeInput{CurrentPassword: "oldpass", NewPassword: "newpass"}))

	fields := fieldsOf(t, Validate(PasswordChangeInput{CurrentPassword: "samepass", NewPassword: "samepass"}))
	assert.Equal(t, "newPassword must differ from CurrentPassword", fields["newPassword"])
}

func TestValidationError_ErrorIsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "second", "a": "first"}}
	assert.Equal(t, "first; second", err.Error())
	assert.True(t, errors.Is(Invalid("x", "y"), ErrValidation))
}
