package search

import (
	"context"
	"fmt"
	"strings"
)

// Searcher 定义通用的新闻检索接口
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// Request 通用搜索请求
type Request struct {
	Query      string
	Topic      string // "news" or "general"
	MaxResults int
	StartDate  string // Format: YYYY-MM-DD
	EndDate    string // Format: YYYY-MM-DD
}

// Response 通用搜索响应
type Response struct {
	Results []Result
}

// Result 单条搜索结果
type Result struct {
	Title         string
	URL           string
	Content       string
	Score         float64
	PublishedDate string
}

// Headlines 渲染为 prompt 中的新闻列表，每条正文截断到 maxContent 字符
func (r *Response) Headlines(maxContent int) string {
	if r == nil {
		return ""
	}
	var sb strings.Builder
	for _, item := range r.Results {
		content := []rune(strings.Join(strings.Fields(item.Content), " "))
		if maxContent > 0 && len(content) > maxContent {
			content = content[:maxContent]
		}
		fmt.Fprintf(&sb, "- %s", item.Title)
		if len(content) > 0 {
			fmt.Fprintf(&sb, ": %s", string(content))
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}
