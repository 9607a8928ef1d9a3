package resumeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resume-builder/internal/shared/telemetry"
)

// DefaultBaseURL is the resume API prefix used when none is configured.
const DefaultBaseURL = "http://localhost:8080/api/v1/resume"

// Response is a successful generation: the raw body text plus transport metadata.
type Response struct {
	Status int
	Data   string
	Header http.Header
}

// Client talks to the resume generation endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// New builds a client rooted at baseURL (DefaultBaseURL when empty).
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{baseURL: baseURL, httpClient: &http.Client{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the endpoint prefix in use.
func (c *Client) BaseURL() string { return c.baseURL }

type generateRequest struct {
	Summary string `json:"summary"`
}

// GenerateResume posts the free-text summary and returns the generated resume text.
// Any transport failure or non-2xx status yields a *RequestError. No retry is attempted.
func (c *Client) GenerateResume(ctx context.Context, summary string) (*Response, error) {
	payload, err := json.Marshal(generateRequest{Summary: summary})
	if err != nil {
		return nil, c.fail("generate", &RequestError{Err: err})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, c.fail("generate", &RequestError{Err: err})
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do("generate", req)
}

// Health returns the health text reported by the server.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return "", c.fail("health", &RequestError{Err: err})
	}
	resp, err := c.do("health", req)
	if err != nil {
		return "", err
	}
	return resp.Data, nil
}

func (c *Client) do(op string, req *http.Request) (*Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(op, &RequestError{Err: err})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(op, &RequestError{Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail(op, &RequestError{
			Status:  resp.StatusCode,
			Message: serverMessage(body),
			Err:     fmt.Errorf("unexpected status %s", resp.Status),
		})
	}

	return &Response{Status: resp.StatusCode, Data: string(body), Header: resp.Header}, nil
}

func (c *Client) fail(op string, err *RequestError) error {
	fields := map[string]any{
		"url":    c.baseURL + "/" + op,
		"status": err.Status,
		"error":  err.Err.Error(),
	}
	if err.Message != "" {
		fields["message"] = err.Message
	}
	telemetry.Error("resumeclient."+op+".failed", fields)
	return err
}
