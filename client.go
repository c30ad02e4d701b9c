// Package casedex is a thin HTTP client for the casedex API.
package casedex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kailas-cloud/casedex/internal/domain"
)

// Wire types re-exported from the domain layer.
type (
	// SearchRequest is the search input for POST /api/v1/cases/search.
	SearchRequest = domain.SearchRequest
	// SearchResponse is one page of cases plus pagination metadata.
	SearchResponse = domain.SearchResponse
	// CaseRecord is a normalized penalty case.
	CaseRecord = domain.CaseRecord
	// Stats holds the dashboard aggregates.
	Stats = domain.Stats
	// StatBucket is one aggregate row.
	StatBucket = domain.StatBucket
)

// HealthReport is the GET /health response body.
type HealthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// APIError is an error response decoded from the API.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("casedex: %s (%d): %s", e.Code, e.Status, e.Message)
}

// Client calls the casedex API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o.apply(c)
	}
	return c
}

// Search runs a case search.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (SearchResponse, error) {
	var resp SearchResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/cases/search", req, &resp)
	return resp, err
}

// Case fetches a single case by id.
func (c *Client) Case(ctx context.Context, id string) (CaseRecord, error) {
	var rec CaseRecord
	err := c.do(ctx, http.MethodGet, "/api/v1/cases/"+id, nil, &rec)
	return rec, err
}

// Stats fetches the dashboard aggregates.
func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := c.do(ctx, http.MethodGet, "/api/v1/stats", nil, &stats)
	return stats, err
}

// Health fetches the service health report. A 503 still carries a
// report body, so it is returned without error; callers inspect Status.
func (c *Client) Health(ctx context.Context) (HealthReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return HealthReport{}, fmt.Errorf("casedex: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HealthReport{}, fmt.Errorf("casedex: GET /health: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
		return HealthReport{}, &APIError{Status: resp.StatusCode, Code: "unknown", Message: resp.Status}
	}

	var report HealthReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return HealthReport{}, fmt.Errorf("casedex: decode response: %w", err)
	}
	return report, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("casedex: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("casedex: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("casedex: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Code == "" {
			apiErr.Code = "unknown"
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("casedex: decode response: %w", err)
		}
	}
	return nil
}
