package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/meltforce/ftracker/internal/ingest"
	"github.com/meltforce/ftracker/internal/training"
)

const maxAttempts = 3

// APIError is a non-2xx answer from the ftracker server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client sends sensor packages to the ftracker server over HTTP.
type Client struct {
	serverURL  string
	apiKey     string
	httpClient *http.Client
	backoff    time.Duration
}

// NewClient creates a new HTTP client for the ftracker server.
func NewClient(serverURL, apiKey string) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		backoff: time.Second,
	}
}

// Compute POSTs one package and returns the server's report.
func (c *Client) Compute(ctx context.Context, pkg ingest.Package) (ingest.Report, error) {
	var report ingest.Report
	status, body, err := c.post(ctx, "/api/v1/trainings/", pkg)
	if err != nil {
		return report, err
	}
	if status != http.StatusOK {
		return report, apiError(status, body)
	}
	if err := json.Unmarshal(body, &report); err != nil {
		return report, fmt.Errorf("decoding report: %w", err)
	}
	return report, nil
}

// ComputeBatch POSTs a package list. On a rejected package the partial result
// is returned with an *ingest.PackageError wrapping the *APIError.
func (c *Client) ComputeBatch(ctx context.Context, pkgs []ingest.Package) (*ingest.Result, error) {
	status, body, err := c.post(ctx, "/api/v1/trainings/batch", pkgs)
	if err != nil {
		return nil, err
	}

	if status == http.StatusOK {
		var result ingest.Result
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("decoding result: %w", err)
		}
		return &result, nil
	}

	var failed struct {
		Error  string         `json:"error"`
		Index  *int           `json:"index"`
		Result *ingest.Result `json:"result"`
	}
	if err := json.Unmarshal(body, &failed); err != nil || failed.Index == nil || *failed.Index < 0 || *failed.Index >= len(pkgs) {
		return nil, apiError(status, body)
	}
	return failed.Result, &ingest.PackageError{
		Index: *failed.Index,
		Code:  pkgs[*failed.Index].Code,
		Err:   &APIError{Status: status, Message: failed.Error},
	}
}

// WorkoutTypes fetches the catalog of accepted workout codes.
func (c *Client) WorkoutTypes(ctx context.Context) ([]training.Kind, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+"/api/v1/workout-types", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching workout types: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}

	var kinds []training.Kind
	if err := json.Unmarshal(body, &kinds); err != nil {
		return nil, fmt.Errorf("decoding workout types: %w", err)
	}
	return kinds, nil
}

// post sends v as JSON. Transport failures and 5xx answers are retried up to
// 3 times with exponential backoff; any other status is returned as is.
func (c *Client) post(ctx context.Context, path string, v any) (int, []byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, nil, fmt.Errorf("marshaling payload: %w", err)
	}

	var lastErr error
	for attempt := range maxAttempts {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return 0, nil, ctx.Err()
			case <-time.After(c.backoff << uint(attempt-1)):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+path, bytes.NewReader(data))
		if err != nil {
			return 0, nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = apiError(resp.StatusCode, body)
			continue
		}
		return resp.StatusCode, body, nil
	}

	return 0, nil, fmt.Errorf("after %d attempts: %w", maxAttempts, lastErr)
}

func apiError(status int, body []byte) *APIError {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return &APIError{Status: status, Message: e.Error}
	}
	return &APIError{Status: status, Message: strings.TrimSpace(string(body))}
}
