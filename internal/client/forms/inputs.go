package forms

import "github.com/dmitrijs2005/hrverify/internal/client/models"

// LoginInput is the first step of the login form.
type LoginInput struct {
	Identifier string      `json:"email" validate:"required"`
	Secret     string      `json:"password" validate:"required"`
	Role       models.Role `json:"role" validate:"required,oneof=CANDIDATE COMPANY ADMIN"`
}

// OtpInput is the admin one-time code.
type OtpInput struct {
	OTP string `json:"otp" validate:"required,otp"`
}

// SignupInput is the signup form. Phone is optional but must be a mobile
// number when present.
type SignupInput struct {
	FullName string      `json:"fullName" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Phone    string      `json:"phone" validate:"omitempty,mobile"`
	Secret   string      `json:"password" validate:"min=6"`
	Role     models.Role `json:"role" validate:"required,oneof=CANDIDATE COMPANY ADMIN"`
}

// VerificationInput is the emailed signup code.
type VerificationInput struct {
	Code string `json:"code" validate:"required,otp"`
}

// AdminCodeInput is the admin security code gate of signup.
type AdminCodeInput struct {
	Code string `json:"adminCode" validate:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,otp"`
	NewPassword string `json:"newPassword" validate:"min=6"`
}

type PasswordChangeInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"min=6,nefield=CurrentPassword"`
}

type ProfileInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,mobile"`
}
