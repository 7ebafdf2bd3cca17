package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	MethodGet = http.MethodGet

	defaultMaxBodyBytes = 8 << 20
)

// ClientOption configures Client.
type ClientOption func(*Client)

// RequestOptions holds HTTP request parameters.
type RequestOptions struct {
	Method  string
	URL     string
	Headers map[string]string
}

// Client is a thin JSON-over-HTTP client whose errors are always *FetchError.
type Client struct {
	timeout      time.Duration
	maxBodyBytes int64
	userAgent    string
	client       *http.Client
}

// NewClient creates a new HTTP client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout:      30 * time.Second,
		maxBodyBytes: defaultMaxBodyBytes,
		userAgent:    "godsignal/1.0",
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}
	return c
}

// SendRequest sends an HTTP request and returns the raw response.
func (c *Client) SendRequest(ctx context.Context, opts *RequestOptions) (*http.Response, error) {
	method := opts.Method
	if method == "" {
		method = MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, opts.URL, nil)
	if err != nil {
		return nil, &FetchError{Kind: FailureTransport, URL: opts.URL, Err: fmt.Errorf("new request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classify(ctx, opts.URL, 0, err, FailureTransport)
	}
	return resp, nil
}

// SendAndParse sends a request, requires a 2xx status and decodes the JSON body into dest.
// dest may be *json.RawMessage to defer decoding to the caller.
func (c *Client) SendAndParse(ctx context.Context, opts *RequestOptions, dest interface{}) error {
	resp, err := c.SendRequest(ctx, opts)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &FetchError{
			Kind:   FailureStatus,
			URL:    opts.URL,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if dest == nil {
		return nil
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, c.maxBodyBytes))
	if err := dec.Decode(dest); err != nil {
		return classify(ctx, opts.URL, resp.StatusCode, fmt.Errorf("decode json: %w", err), FailureParse)
	}
	// The body must be exactly one JSON value.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			err = errors.New("more than one JSON value")
		}
		return classify(ctx, opts.URL, resp.StatusCode, fmt.Errorf("trailing data: %w", err), FailureParse)
	}
	return nil
}

// GetJSON is SendAndParse for a plain GET.
func (c *Client) GetJSON(ctx context.Context, url string, dest interface{}) error {
	return c.SendAndParse(ctx, &RequestOptions{Method: MethodGet, URL: url}, dest)
}

// classify maps err onto a FailureKind; deadline expiry always wins over the fallback kind.
func classify(ctx context.Context, url string, status int, err error, fallback FailureKind) *FetchError {
	kind := fallback
	var ne net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		kind = FailureTimeout
	case errors.As(err, &ne) && ne.Timeout():
		kind = FailureTimeout
	}
	return &FetchError{Kind: kind, URL: url, Status: status, Err: err}
}

// WithTimeout sets the transport-level timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}
