package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/hrverify/internal/client/session"
	"github.com/dmitrijs2005/hrverify/internal/logging"
	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
)

const (
	DefaultBaseURL = "http://localhost:8080"
	DefaultTimeout = 10 * time.Second

	RequestIDHeader = "X-Request-ID"
)

type Options struct {
	BaseURL string
	Timeout time.Duration
	// Transport overrides http.DefaultTransport; nil keeps the default.
	Transport http.RoundTripper
}

type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	log     logging.Logger

	mu      sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

func New(opts Options, store session.Store, log logging.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logging.Nop()
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    &http.Client{Timeout: opts.Timeout, Transport: opts.Transport},
		store:   store,
		log:     log,
		subs:    make(map[int]func(Event)),
	}
}

// BaseURL returns the backend origin requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doJSON sends in (if non-nil) as a JSON body and decodes the response into
// out (if non-nil). params is encoded with go-querystring.
func (c *Client) doJSON(ctx context.Context, method, path string, params any, in any, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := c.newRequest(ctx, method, path, params, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, params any, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path

	if params != nil {
		v, err := query.Values(params)
		if err != nil {
			return nil, fmt.Errorf("encode query: %w", err)
		}
		if q := v.Encode(); q != "" {
			u += "?" + q
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	ctx := req.Context()

	if err := c.authorize(req); err != nil {
		return err
	}

	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)
	log := c.log.With("request_id", reqID, "method", req.Method, "path", req.URL.Path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err, "duration", time.Since(start))
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	log.Debug(ctx, "request finished", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		c.unauthorized(ctx, req.URL.Path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) error {
	if c.store == nil {
		return nil
	}
	s, ok, err := c.store.Get(req.Context())
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if ok {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	return nil
}

func (c *Client) unauthorized(ctx context.Context, path string) {
	if c.store != nil {
		if err := c.store.Clear(ctx); err != nil {
			c.log.Warn(ctx, "failed to clear session after 401", "error", err)
		}
	}
	c.emit(Event{Kind: EventUnauthorized, Path: path})
}
