package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// upstreamBodyLimit caps how much of a failed response lands in error messages.
const upstreamBodyLimit = 512

type AdminClient struct {
	endpoint string
	auth     string
	client   *http.Client
}

func NewAdminClient(endpoint, auth string) *AdminClient {
	return &AdminClient{
		endpoint: endpoint,
		auth:     auth,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Fetch pulls raw orders for the [from, to] epoch-second range from the admin
// API and returns the decoded JSON payload as-is.
func (c *AdminClient) Fetch(ctx context.Context, from, to int64, vehicleType string) (any, error) {
	if c.endpoint == "" {
		return nil, &ConfigError{Name: "ADMIN_API_JSON"}
	}
	if c.auth == "" {
		return nil, &ConfigError{Name: "ADMIN_AUTH"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := url.Values{}
	q.Set("from_date", strconv.FormatInt(from, 10))
	q.Set("to_date", strconv.FormatInt(to, 10))
	q.Set("vehicle_type", vehicleType)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Authorization", c.auth)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, upstreamBodyLimit))
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &UpstreamError{Err: fmt.Errorf("decode response: %w", err)}
	}

	return payload, nil
}
