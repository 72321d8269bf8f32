package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocode_Match(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "123 Main St, San Francisco, CA, 94105", r.URL.Query().Get("q"))
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`[{"lat": "37.7749", "lon": "-122.4194"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	lat, lon, err := c.Geocode(context.Background(), "123 Main St", "94105")
	require.NoError(t, err)
	require.NotNil(t, lat)
	require.NotNil(t, lon)
	assert.InDelta(t, 37.7749, *lat, 1e-9)
	assert.InDelta(t, -122.4194, *lon, 1e-9)
}

func TestGeocode_NoZipCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "555 Oak St, San Francisco, CA", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	lat, lon, err := c.Geocode(context.Background(), "555 Oak St", "")
	require.NoError(t, err)
	assert.Nil(t, lat)
	assert.Nil(t, lon)
}

func TestGeocode_EmptyAddress(t *testing.T) {
	c := NewClient("http://unused.invalid", time.Second)
	lat, lon, err := c.Geocode(context.Background(), "", "")
	require.NoError(t, err)
	assert.Nil(t, lat)
	assert.Nil(t, lon)
}

func TestGeocode_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, _, err := c.Geocode(context.Background(), "123 Main St", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
