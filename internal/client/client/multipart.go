package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// FormFile is one file part of a multipart upload.
type FormFile struct {
	Field   string
	Name    string
	Content io.Reader
}

// FormField is one plain value of a multipart upload. Empty values are skipped.
type FormField struct {
	Name  string
	Value string
}

// OpenFormFile reads the file at path into a FormFile.
func OpenFormFile(field, path string) (FormFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FormFile{}, err
	}
	return FormFile{Field: field, Name: filepath.Base(path), Content: bytes.NewReader(data)}, nil
}

func (c *Client) doMultipart(ctx context.Context, method, path string, fields []FormField, files []FormFile, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return fmt.Errorf("create part %s: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return fmt.Errorf("write part %s: %w", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, method, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req, out)
}
