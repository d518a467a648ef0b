// Package llmtest 提供测试用的上游生成服务替身
package llmtest

import (
	"context"
	"strings"
	"sync"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/llm"
)

// 默认的合法响应
const (
	Keywords = "KEYWORD: smart shelves | EXPLANATION: retailers automate restocking | SCORE: 87\n" +
		"KEYWORD: widget subscriptions | EXPLANATION: recurring revenue for stores | SCORE: 72\n" +
		"KEYWORD: eco packaging | EXPLANATION: shoppers want less plastic | SCORE: 65\n"
	SEO = `{"metaDescriptions":["Acme widgets keep shelves smart and stocked for retailers everywhere.","Discover how Acme widgets help retailers ride today's smart shelf trend."],` +
		`"metaKeywords":["widgets","smart shelves","retail","restocking","acme"]}`
	Post = `{"imagePrompt":"a glowing widget on a smart shelf, cinematic lighting","postText":"Shelves that think. #widgets #retail #smartshelves",` +
		`"interactiveQuestion":"What would you automate first?","ctaSuggestion":"Shop Now"}`
	ImagePrompt = "  a minimalist 3D render of a widget orbiting a store shelf, neon glow  "
	Image       = "data:image/png;base64,aW1hZ2U="
)

// Stub 按请求类型返回预设结果，并记录所有调用
type Stub struct {
	mu sync.Mutex

	Keywords, SEO, Post, ImagePrompt, Image string
	KeywordsErr, SEOErr, PostErr, PromptErr error
	ImageErr                                error

	TextCalls    []llm.TextRequest
	ImagePrompts []string
}

// New 返回一个所有请求都成功的 Stub
func New() *Stub {
	return &Stub{
		Keywords:    Keywords,
		SEO:         SEO,
		Post:        Post,
		ImagePrompt: ImagePrompt,
		Image:       Image,
	}
}

var _ llm.Generator = (*Stub)(nil)

func (s *Stub) GenerateText(ctx context.Context, req *llm.TextRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.TextCalls = append(s.TextCalls, *req)

	switch {
	case req.Schema != nil && req.Schema.Name == "seo":
		return s.SEO, s.SEOErr
	case req.Schema != nil && req.Schema.Name == "post":
		return s.Post, s.PostErr
	case strings.Contains(req.Prompt, "KEYWORD:"):
		return s.Keywords, s.KeywordsErr
	default:
		return s.ImagePrompt, s.PromptErr
	}
}

func (s *Stub) GenerateImage(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ImagePrompts = append(s.ImagePrompts, prompt)
	if s.ImageErr != nil {
		return "", s.ImageErr
	}
	return s.Image, nil
}

// Calls 返回远程调用总次数
func (s *Stub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.TextCalls) + len(s.ImagePrompts)
}
