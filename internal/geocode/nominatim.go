// Package geocode provides a thin reverse-geocoding client against the
// Nominatim API. It is a best-effort collaborator: quiz creation works without
// it, and lookup failures only degrade hint quality.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const requestTimeout = 10 * time.Second

// Client reverse-geocodes coordinates via a Nominatim-compatible endpoint.
//
// Requests are throttled to one per second per the public Nominatim usage
// policy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
}

// New creates a client for the given Nominatim base URL
// (e.g. "https://nominatim.openstreetmap.org").
func New(baseURL, userAgent string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(1), 1),
		userAgent:  userAgent,
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// Reverse resolves a coordinate to a human-readable address. An empty result
// without error means the coordinate resolved to nothing nameable.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building reverse request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "ko,en")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode: unexpected status %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding reverse response: %w", err)
	}
	if body.Error != "" {
		// Nominatim reports "Unable to geocode" for open ocean etc.
		return "", nil
	}
	return body.DisplayName, nil
}
