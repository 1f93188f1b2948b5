package controllers

import (
	"context"

	"github.com/dmitrijs2005/hrverify/internal/client/forms"
	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/dmitrijs2005/hrverify/internal/logging"
)

type AccountAPI interface {
	Profile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, in models.UserProfile) (*models.UserProfile, error)
	ChangePassword(ctx context.Context, in models.PasswordChange) error
	UploadDocument(ctx context.Context, path string) (*models.UploadResult, error)
	UploadImage(ctx context.Context, path string) (*models.UploadResult, error)
}

// Account covers the settings screen shared by every role.
type Account struct {
	api AccountAPI
	log logging.Logger

	Profile *models.UserProfile
}

func NewAccount(api AccountAPI, log logging.Logger) *Account {
	return &Account{api: api, log: orNop(log)}
}

func (a *Account) Load(ctx context.Context) error {
	p, err := a.api.Profile(ctx)
	if err != nil {
		return err
	}
	a.Profile = p
	return nil
}

func (a *Account) UpdateProfile(ctx context.Context, in forms.ProfileInput) (*models.UserProfile, error) {
	if err := forms.Validate(in); err != nil {
		return nil, err
	}
	p, err := a.api.UpdateProfile(ctx, models.UserProfile{FullName: in.FullName, Email: in.Email, Phone: in.Phone})
	if err != nil {
		return nil, err
	}
	a.Profile = p
	return p, nil
}

func (a *Account) ChangePassword(ctx context.Context, in forms.PasswordChangeInput) error {
	if err := forms.Validate(in); err != nil {
		return err
	}
	if err := a.api.ChangePassword(ctx, models.PasswordChange{CurrentPassword: in.CurrentPassword, NewPassword: in.NewPassword}); err != nil {
		return err
	}
	a.log.Info(ctx, "password changed")
	return nil
}

// Upload sends a local file to the document or image upload endpoint.
func (a *Account) Upload(ctx context.Context, path string, image bool) (*models.UploadResult, error) {
	if path == "" {
		return nil, forms.Invalid("file", "file is required")
	}
	if image {
		return a.api.UploadImage(ctx, path)
	}
	return a.api.UploadDocument(ctx, path)
}
