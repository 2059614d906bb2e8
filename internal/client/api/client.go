// Package api implements the HTTP client for the notes backend: a request
// executor with categorized failures, plus typed wrappers for the auth and
// notes endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/dmitrijs2005/noteskeeper/internal/logging"
	"github.com/google/uuid"
)

// TokenSource supplies the current access token for authenticated calls.
// An empty string means "no token"; the bearer header is then omitted and
// the server is left to enforce authentication.
type TokenSource interface {
	AccessToken(ctx context.Context) string
}

// Client executes requests against a fixed base URL (an HTTP origin plus
// the /api prefix). Every request is a single attempt: no retries, no
// request coalescing, timeouts are whatever the underlying http.Client has.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport, e.g. to set a timeout.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient builds a Client for the given base URL, e.g.
// "http://localhost:8000/api".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured origin, for display purposes.
func (c *Client) BaseURL() string { return c.baseURL }

// request sends one HTTP request and returns the raw body on a 2xx status.
// Non-2xx statuses and transport failures come back as *Error.
//
// Content-Type defaults to application/json; caller headers are merged over
// the defaults. Each request carries a generated X-Request-Id so client and
// server logs can be correlated.
func (c *Client) request(ctx context.Context, method, endpoint string, body []byte, headers map[string]string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, &Error{Kind: KindInvalidURL, Message: err.Error()}
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.log.Debug(ctx, "sending request", "method", method, "endpoint", endpoint, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "transport failure", "endpoint", endpoint, "request_id", requestID, "error", err)
		return nil, &Error{Kind: KindNetworkUnavailable, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindInvalidResponse, Message: err.Error()}
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return data, nil
	}

	apiErr := classifyStatus(resp.StatusCode, data)
	c.log.Debug(ctx, "request failed", "endpoint", endpoint, "request_id", requestID, "status", resp.StatusCode, "kind", apiErr.Kind.String())
	return nil, apiErr
}

// classifyStatus maps a non-2xx status and its body to a categorized error.
// 401/403/404 get their dedicated kinds; other 4xx become ServerError with
// whatever detail the body offers; 5xx is a generic server error; anything
// outside those ranges is an invalid response.
func classifyStatus(code int, body []byte) *Error {
	switch {
	case code == http.StatusUnauthorized:
		return &Error{Kind: KindUnauthorized, Code: code, Message: extractDetail(body)}
	case code == http.StatusForbidden:
		return &Error{Kind: KindForbidden, Code: code, Message: extractDetail(body)}
	case code == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Code: code, Message: extractDetail(body)}
	case code >= 400 && code <= 499:
		detail := extractDetail(body)
		if detail == "" {
			detail = "Bad request"
		}
		return &Error{Kind: KindServerError, Code: code, Message: detail}
	case code >= 500 && code <= 599:
		return &Error{Kind: KindServerError, Code: code, Message: "Server error"}
	default:
		return &Error{Kind: KindInvalidResponse, Code: code}
	}
}

// errorEnvelope covers the two error body shapes the backend produces:
// {"detail": "..."} and {"errors": [{"detail": "..."}, ...]}.
type errorEnvelope struct {
	Detail string `json:"detail"`
	Errors []struct {
		Detail string `json:"detail"`
	} `json:"errors"`
}

func extractDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if env.Detail != "" {
		return env.Detail
	}
	if len(env.Errors) > 0 {
		return env.Errors[0].Detail
	}
	return ""
}

// do executes a request and decodes the JSON response into T.
// An undecodable 2xx body is a DecodingError, distinct from server and
// transport failures.
func do[T any](ctx context.Context, c *Client, method, endpoint string, payload any, headers map[string]string) (T, error) {
	var out T

	var body []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return out, &Error{Kind: KindEncodingError, Message: err.Error()}
		}
		body = b
	}

	data, err := c.request(ctx, method, endpoint, body, headers)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, &Error{Kind: KindDecodingError, Message: err.Error()}
	}
	return out, nil
}

// bearerHeader formats the authorization header for token, or returns nil
// when there is no token to attach.
func bearerHeader(token string) map[string]string {
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + token}
}
