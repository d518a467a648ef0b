package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/config"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/rss"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/searxng"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/tavily"
)

func TestNewSearcher(t *testing.T) {
	tests := []struct {
		name    string
		search  config.SearchConfig
		want    any
		wantErr bool
	}{
		{name: "disabled", search: config.SearchConfig{}, want: nil},
		{name: "tavily", search: config.SearchConfig{Provider: "tavily", Tavily: config.TavilyConfig{APIKey: "k"}}, want: &tavily.Client{}},
		{name: "tavily without key", search: config.SearchConfig{Provider: "tavily"}, wantErr: true},
		{name: "searxng", search: config.SearchConfig{Provider: "searxng", SearXNG: config.SearXNGConfig{BaseURL: "http://s"}}, want: &searxng.Client{}},
		{name: "searxng without url", search: config.SearchConfig{Provider: "searxng"}, wantErr: true},
		{name: "rss", search: config.SearchConfig{Provider: "rss", RSS: config.RSSConfig{Feeds: []string{"http://f"}}}, want: &rss.Client{}},
		{name: "rss without feeds", search: config.SearchConfig{Provider: "rss"}, wantErr: true},
		{name: "unknown", search: config.SearchConfig{Provider: "bing"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSearcher(&config.Config{Search: tt.search})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}
