package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// NetworkErrorMessage is shown for ErrUnavailable.
const NetworkErrorMessage = "Network error occurred. Please try again."

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// Message returns the user-facing text for err.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, ErrUnavailable) {
		return NetworkErrorMessage
	}
	return err.Error()
}

// errorMessage extracts a message from an error body: a JSON "message"
// field first, then a JSON string, then plain text.
func errorMessage(status int, body []byte) string {
	trimmed := strings.TrimSpace(string(body))

	if trimmed != "" {
		var obj struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &obj); err == nil && obj.Message != "" {
			return obj.Message
		}

		var s string
		if err := json.Unmarshal(body, &s); err == nil && s != "" {
			return s
		}

		if !json.Valid(body) {
			return trimmed
		}
	}

	return fmt.Sprintf("Request failed with status code %d", status)
}
