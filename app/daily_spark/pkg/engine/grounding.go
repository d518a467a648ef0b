package engine

import (
	"context"
	"strings"
	"time"

	"github.com/bytedance/gg/gson"
	"github.com/go-shiori/go-readability"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/logger"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/model"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/search"
)

const (
	headlineResults  = 5
	headlineDays     = 3
	headlineChars    = 300
	minSnippetLength = 80
)

// headlines 检索近几天与业务相关的新闻，作为关键词分析的上下文。
// 检索失败只记录日志，不影响主流程。
func (e *Engine) headlines(ctx context.Context, profile *model.BusinessProfile) string {
	now := e.now()
	req := &search.Request{
		Query:      strings.TrimSpace(profile.Description + " " + profile.TargetAudience),
		Topic:      "news",
		MaxResults: headlineResults,
		StartDate:  now.AddDate(0, 0, -headlineDays).Format(time.DateOnly),
		EndDate:    now.Format(time.DateOnly),
	}

	resp, err := e.searcher.Search(ctx, req)
	if err != nil {
		logger.Log.Warnf("检索相关新闻失败 [%s]: %v", profile.Name, err)
		return ""
	}
	logger.Log.Debugf("检索相关新闻成功 [%s]: %s", profile.Name, gson.ToString(resp))

	// 摘要太短时尝试抓取正文
	for i := range resp.Results {
		item := &resp.Results[i]
		if len(item.Content) >= minSnippetLength || item.URL == "" {
			continue
		}
		fetched, err := e.fetch(item.URL)
		if err == nil && len(fetched) > len(item.Content) {
			item.Content = fetched
		}
	}
	return resp.Headlines(headlineChars)
}

// fetchAndCleanContent 抓取 URL 并提取核心文本
func fetchAndCleanContent(url string) (string, error) {
	article, err := readability.FromURL(url, 30*time.Second)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}
