// Package closeapi provides REST access to the Close CRM API.
package closeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.close.com/api/v1"

// Client defines the Close API operations used by the import pipeline.
type Client interface {
	// LeadCustomFields lists the lead custom-field definitions.
	LeadCustomFields(ctx context.Context) ([]CustomField, error)
	// CreateLead creates a lead and returns its identifier.
	CreateLead(ctx context.Context, payload map[string]any) (string, error)
	// CreateContact creates a contact attached to an existing lead.
	CreateContact(ctx context.Context, payload map[string]any) error
}

// CustomField is a lead custom-field definition.
type CustomField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Key returns the field key used in lead payloads.
func (f CustomField) Key() string {
	return "custom." + f.ID
}

type customFieldsResponse struct {
	Data    []CustomField `json:"data"`
	HasMore bool          `json:"has_more"`
}

type createResponse struct {
	ID string `json:"id"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit sets a per-second rate limit for API calls.
// A burst equal to the integer portion of rps is allowed.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), max(int(rps), 1))
		}
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Close API client. The API key is sent as the basic-auth
// username with an empty password, per the Close authentication scheme.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// wait blocks until the rate limiter allows one event, or ctx is cancelled.
func (c *httpClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

func (c *httpClient) LeadCustomFields(ctx context.Context) ([]CustomField, error) {
	var resp customFieldsResponse
	if err := c.do(ctx, http.MethodGet, "/custom_field/lead/", nil, &resp); err != nil {
		return nil, eris.Wrap(err, "close: list lead custom fields")
	}
	return resp.Data, nil
}

func (c *httpClient) CreateLead(ctx context.Context, payload map[string]any) (string, error) {
	var resp createResponse
	if err := c.do(ctx, http.MethodPost, "/lead/", payload, &resp); err != nil {
		return "", eris.Wrap(err, "close: create lead")
	}
	if resp.ID == "" {
		return "", eris.New("close: create lead returned no id")
	}
	return resp.ID, nil
}

func (c *httpClient) CreateContact(ctx context.Context, payload map[string]any) error {
	if err := c.do(ctx, http.MethodPost, "/contact/", payload, nil); err != nil {
		return eris.Wrap(err, "close: create contact")
	}
	return nil
}

func (c *httpClient) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.wait(ctx); err != nil {
		return eris.Wrap(err, "rate limit")
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return eris.Wrap(err, "marshal request")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return eris.Wrap(err, "create request")
	}
	req.SetBasicAuth(c.apiKey, "")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "read response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return eris.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return eris.Wrap(err, fmt.Sprintf("unmarshal %s response", path))
		}
	}
	return nil
}
