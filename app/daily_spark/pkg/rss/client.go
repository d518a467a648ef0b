package rss

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/logger"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/search"
)

// Client 以一组 RSS 订阅源作为新闻来源
type Client struct {
	feeds   []string
	timeout time.Duration
	parser  *gofeed.Parser
	now     func() time.Time
}

// NewClient timeout 单位为秒，作用于单个订阅源
func NewClient(feeds []string, timeout int) *Client {
	t := time.Duration(timeout) * time.Second
	if t == 0 {
		t = 20 * time.Second
	}
	return &Client{
		feeds:   feeds,
		timeout: t,
		parser:  gofeed.NewParser(),
		now:     time.Now,
	}
}

var _ search.Searcher = (*Client)(nil)

// Search 抓取全部订阅源，保留 StartDate 之后的条目。
// 标题或摘要命中查询词的条目排在前面，其余按发布时间倒序。
func (c *Client) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	since := c.now().Add(-24 * time.Hour)
	if req.StartDate != "" {
		if t, err := time.Parse(time.DateOnly, req.StartDate); err == nil {
			since = t
		}
	}
	terms := strings.Fields(strings.ToLower(req.Query))

	type scored struct {
		search.Result
		hits      int
		published time.Time
	}
	var items []scored
	var failed int
	for _, url := range c.feeds {
		feed, err := c.fetch(ctx, url)
		if err != nil {
			failed++
			logger.Log.Warnf("解析 RSS 失败 [%s]: %v", url, err)
			continue
		}
		for _, item := range feed.Items {
			// 没有发布时间的条目默认保留
			var published time.Time
			if item.PublishedParsed != nil {
				published = *item.PublishedParsed
				if published.Before(since) {
					continue
				}
			}
			text := strings.ToLower(item.Title + " " + item.Description)
			hits := 0
			for _, term := range terms {
				if strings.Contains(text, term) {
					hits++
				}
			}
			items = append(items, scored{
				Result: search.Result{
					Title:         item.Title,
					URL:           item.Link,
					Content:       item.Description,
					PublishedDate: item.Published,
				},
				hits:      hits,
				published: published,
			})
		}
	}
	if failed > 0 && failed == len(c.feeds) {
		return nil, fmt.Errorf("all %d rss feeds failed", failed)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].hits != items[j].hits {
			return items[i].hits > items[j].hits
		}
		return items[i].published.After(items[j].published)
	})

	limit := req.MaxResults
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}
	results := make([]search.Result, 0, limit)
	for _, it := range items[:limit] {
		results = append(results, it.Result)
	}
	return &search.Response{Results: results}, nil
}

func (c *Client) fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.parser.ParseURLWithContext(url, ctx)
}
