package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricket-analytics/internal/config"
)

func TestCheckFeed(t *testing.T) {
	modified := time.Date(2025, 7, 14, 6, 30, 0, 0, time.UTC)
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Header().Set("Last-Modified", modified.Format(http.TimeFormat))
		w.Header().Set("Content-Length", "52428800")
	}))
	defer srv.Close()

	client := NewCricsheetClient(&config.Config{CricsheetFeedURL: srv.URL})
	info, err := client.CheckFeed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodHead, gotMethod)
	assert.Equal(t, srv.URL, info.URL)
	assert.Equal(t, modified, info.LastModified)
	assert.Equal(t, int64(52428800), info.ContentLength)
	assert.False(t, info.CheckedAt.IsZero())
}

func TestCheckFeedMissingHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	client := NewCricsheetClient(&config.Config{CricsheetFeedURL: srv.URL})
	info, err := client.CheckFeed(context.Background())
	require.NoError(t, err)
	assert.True(t, info.LastModified.IsZero())
}

func TestCheckFeedUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewCricsheetClient(&config.Config{CricsheetFeedURL: srv.URL})
	_, err := client.CheckFeed(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
