package searxng

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/search"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "news", r.URL.Query().Get("categories"))
		assert.Equal(t, "widget retail", r.URL.Query().Get("q"))
		w.Write([]byte(`{"results":[
			{"title":"a","url":"https://a","content":"x"},
			{"title":"b","url":"https://b","content":"y"},
			{"title":"c","url":"https://c","content":"z"}]}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL, 5).Search(context.Background(), &search.Request{
		Query: "widget retail", Topic: "news", MaxResults: 2,
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "b", resp.Results[1].Title)
}

func TestSearch_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).Search(context.Background(), &search.Request{Query: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestTimeRange(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "day", timeRange("2026-10-15", now))
	assert.Equal(t, "week", timeRange("2026-10-12", now))
	assert.Equal(t, "month", timeRange("2026-09-20", now))
	assert.Equal(t, "year", timeRange("2025-01-01", now))
	assert.Equal(t, "week", timeRange("garbage", now))
}
