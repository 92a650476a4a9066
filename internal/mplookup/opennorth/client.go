package opennorth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// ErrNotFound means the Represent API has no record for the postal code.
var ErrNotFound = errors.New("postal code not found in Represent API")

// Rate limiter for the public Represent API, which allows 60 requests per
// minute without an API key.
const (
	requestsPerSecond = 1
	requestBurst      = 10
)

// Client is an HTTP client for the OpenNorth Represent API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Represent API client. baseURL has no trailing slash,
// e.g. "https://represent.opennorth.ca".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}
}

// Postcode fetches the postcode resource for a normalized postal code
// (uppercase, no spaces). The response carries the centroid and whatever
// representative arrays the API chooses to include.
func (c *Client) Postcode(ctx context.Context, postal string) (*PostcodeResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	fullURL := fmt.Sprintf("%s/postcodes/%s/", c.baseURL, url.PathEscape(postal))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("represent request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[opennorth] GET /postcodes/%s/ status=%d duration=%dms",
		postal, resp.StatusCode, time.Since(start).Milliseconds())

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("represent API responded %d", resp.StatusCode)
	}

	var out PostcodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode represent response: %w", err)
	}
	return &out, nil
}
