package listings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrUpstream    = errors.New("listings API request failed")
	ErrBadResponse = errors.New("listings API returned a non-JSON response")
)

// Client proxies rental search requests to the third-party API.
type Client struct {
	baseURL string
	host    string
	apiKey  string
	http    *http.Client
}

// NewClient accepts a bare host (https is assumed) or a full base URL with
// an explicit scheme.
func NewClient(host, apiKey string) *Client {
	base := host
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	bare := strings.TrimPrefix(strings.TrimPrefix(host, "https://"), "http://")
	return &Client{
		baseURL: base,
		host:    bare,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SearchRent queries the upstream rent search endpoint and returns the raw
// JSON body, which is relayed to the caller untouched.
func (c *Client) SearchRent(ctx context.Context, filters FilterParams) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/properties/search-rent?%s", c.baseURL, filters.QueryString())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if !json.Valid(body) {
		return nil, ErrBadResponse
	}
	return body, nil
}
