package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/search"
)

func TestSearch(t *testing.T) {
	var got searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tvly-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"query":"widgets","results":[{"title":"Widgets boom","url":"https://n.example/1","content":"sales up","score":0.9,"published_date":"2026-10-14"}]}`))
	}))
	defer srv.Close()

	c := NewClient("tvly-key", srv.URL)
	resp, err := c.Search(context.Background(), &search.Request{Query: "widgets", Topic: "news", StartDate: "2026-10-12"})
	require.NoError(t, err)

	assert.Equal(t, "news", got.Topic)
	assert.Equal(t, 5, got.MaxResults)
	assert.Equal(t, "basic", got.SearchDepth)
	assert.Equal(t, "2026-10-12", got.StartDate)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Widgets boom", resp.Results[0].Title)
	assert.Equal(t, "2026-10-14", resp.Results[0].PublishedDate)
}

func TestSearch_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient("k", srv.URL).Search(context.Background(), &search.Request{Query: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}
