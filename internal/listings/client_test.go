package listings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRentRelaysJSONBody(t *testing.T) {
	var gotPath, gotKey, gotHost string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"results":[{"property_id":1}]}}`))
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "test-key")
	body, err := c.SearchRent(context.Background(), ParseQuery(url.Values{}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"data":{"results":[{"property_id":1}]}}`, string(body))
	assert.Equal(t, "/properties/search-rent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.NotContains(t, gotHost, "://")
}

func TestSearchRentRejectsNonJSONBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>rate limited</html>"))
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "test-key")
	_, err := c.SearchRent(context.Background(), ParseQuery(url.Values{}))
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestSearchRentConnectionFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	c := NewClient(upstream.URL, "test-key")
	_, err := c.SearchRent(context.Background(), ParseQuery(url.Values{}))
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestNewClientSchemeHandling(t *testing.T) {
	c := NewClient("realty.example.com", "k")
	assert.Equal(t, "https://realty.example.com", c.baseURL)
	assert.Equal(t, "realty.example.com", c.host)

	c = NewClient("http://127.0.0.1:9", "k")
	assert.Equal(t, "http://127.0.0.1:9", c.baseURL)
	assert.Equal(t, "127.0.0.1:9", c.host)
}
