package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/hrverify/internal/client/models"
)

func (c *Client) Profile(ctx context.Context) (*models.UserProfile, error) {
	var resp models.UserProfile
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/profile", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in models.UserProfile) (*models.UserProfile, error) {
	var resp models.UserProfile
	if err := c.doJSON(ctx, http.MethodPut, "/api/user/profile", nil, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ChangePassword(ctx context.Context, in models.PasswordChange) error {
	return c.doJSON(ctx, http.MethodPut, "/api/user/change-password", nil, in, nil)
}

// UploadDocument and UploadImage send the file at path as the "file" part.
func (c *Client) UploadDocument(ctx context.Context, path string) (*models.UploadResult, error) {
	return c.upload(ctx, "/api/upload/document", path)
}

func (c *Client) UploadImage(ctx context.Context, path string) (*models.UploadResult, error) {
	return c.upload(ctx, "/api/upload/image", path)
}

func (c *Client) upload(ctx context.Context, endpoint, path string) (*models.UploadResult, error) {
	f, err := OpenFormFile("file", path)
	if err != nil {
		return nil, err
	}
	var resp models.UploadResult
	if err := c.doMultipart(ctx, http.MethodPost, endpoint, nil, []FormFile{f}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
