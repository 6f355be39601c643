package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// FilterPayload is the body of the external savefilter call. UserID is nil
// when no portal user is associated with the session.
type FilterPayload struct {
	JobID      string  `json:"jobId"`
	ClientName string  `json:"clientName"`
	UserID     *string `json:"userId"`
}

// FilterClient posts submitted filter data to the external intake backend.
// A nil or unconfigured client (empty base URL) disables the call.
type FilterClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewFilterClient builds a client for the given API base URL.
func NewFilterClient(baseURL string) *FilterClient {
	return &FilterClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether the client is configured to make calls.
func (c *FilterClient) Enabled() bool {
	return c != nil && c.BaseURL != ""
}

// SaveFilter POSTs the payload to <base>/savefilter. Any non-2xx response is
// an error; callers must not proceed to document generation when it fails.
func (c *FilterClient) SaveFilter(ctx context.Context, payload FilterPayload) error {
	if !c.Enabled() {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("savefilter: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/savefilter", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("savefilter: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("savefilter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("savefilter: unexpected status %d", resp.StatusCode)
	}
	return nil
}
