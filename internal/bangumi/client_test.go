package bangumi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL(t *testing.T) {
	c := NewClient(nil)
	assert.Equal(t, "https://bangumi.org/epg/td?broad_cast_date=20250114&ggm_group_id=42", c.URL("20250114", "42"))

	c = NewClient(nil, WithBaseURL("http://localhost:8080"))
	assert.Equal(t, "http://localhost:8080/epg/td?broad_cast_date=20250115&ggm_group_id=1", c.URL("20250115", "1"))
}

func TestFetchDay(t *testing.T) {
	var (
		mu                       sync.Mutex
		gotQuery, gotUA, gotPath string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		mu.Unlock()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html>番組表</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), WithBaseURL(srv.URL), WithUserAgent("test-agent"))
	body, err := c.FetchDay(context.Background(), "20250114", "42")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "<html>番組表</html>", body)
	assert.Equal(t, "/epg/td", gotPath)
	assert.Equal(t, "broad_cast_date=20250114&ggm_group_id=42", gotQuery)
	assert.Equal(t, "test-agent", gotUA)
}

func TestFetchDayStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), WithBaseURL(srv.URL))
	_, err := c.FetchDay(context.Background(), "20250114", "42")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), "HTTP 503")
}

func TestFetchDayTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := NewClient(nil, WithBaseURL(base))
	_, err := c.FetchDay(context.Background(), "20250114", "42")
	assert.Error(t, err)
}

func TestFetchDayCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.Client(), WithBaseURL(srv.URL))
	_, err := c.FetchDay(ctx, "20250114", "42")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFetchDayBodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 64)))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), WithBaseURL(srv.URL), WithMaxBodySize(64))
	body, err := c.FetchDay(context.Background(), "20250114", "42")
	require.NoError(t, err)
	assert.Len(t, body, 64)

	c = NewClient(srv.Client(), WithBaseURL(srv.URL), WithMaxBodySize(63))
	body, err = c.FetchDay(context.Background(), "20250114", "42")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBodyTooLarge))
	assert.Empty(t, body)
}
