package factory

import (
	"fmt"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/config"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/rss"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/search"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/searxng"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/tavily"
)

// NewSearcher 根据配置创建新闻检索实例；未配置 provider 时返回 nil，表示不检索
func NewSearcher(cfg *config.Config) (search.Searcher, error) {
	switch provider := cfg.Search.Provider; provider {
	case "", "none":
		return nil, nil

	case "tavily":
		if cfg.Search.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(cfg.Search.Tavily.APIKey, ""), nil

	case "searxng":
		if cfg.Search.SearXNG.BaseURL == "" {
			return nil, fmt.Errorf("searxng base url is missing")
		}
		return searxng.NewClient(cfg.Search.SearXNG.BaseURL, cfg.Search.SearXNG.Timeout), nil

	case "rss":
		if len(cfg.Search.RSS.Feeds) == 0 {
			return nil, fmt.Errorf("rss feeds are missing")
		}
		return rss.NewClient(cfg.Search.RSS.Feeds, cfg.Search.RSS.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", provider)
	}
}
