package models

// Markers the login endpoints put in AuthResponse.Message instead of a token.
const (
	MessageOTPRequired      = "OTP_REQUIRED"
	MessageNoCompanyProfile = "NO_COMPANY_PROFILE"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	OTP      string `json:"otp,omitempty"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// AuthResponse is returned by login, admin login and signup.
type AuthResponse struct {
	Token   string `json:"token,omitempty"`
	Role    Role   `json:"role,omitempty"`
	Message string `json:"message,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

type UserProfile struct {
	ID       ID     `json:"id,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UploadResult is the body of /api/upload/*.
type UploadResult struct {
	Path string `json:"path"`
	URL  string `json:"url,omitempty"`
}
