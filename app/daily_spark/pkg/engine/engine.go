package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/llm"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/logger"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/model"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/parser"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/prompt"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/search"
)

// DateLayout 每日内容包的日期格式
const DateLayout = "Monday, January 2, 2006"

const (
	expectedMetaDescriptions = 2
	expectedMetaKeywords     = 5
)

// Engine 核心生成引擎：关键词 → SEO → 帖子 → 配图，严格串行
type Engine struct {
	gen      llm.Generator
	searcher search.Searcher
	grounded bool
	fetch    func(url string) (string, error)
	now      func() time.Time
}

// Option 引擎选项
type Option func(*Engine)

// WithSearcher 使用外部新闻检索补充关键词分析的上下文，仅在模型没有联网搜索时生效
func WithSearcher(s search.Searcher) Option {
	return func(e *Engine) { e.searcher = s }
}

// WithNativeSearch 文本模型自带联网搜索（Gemini Google Search）
func WithNativeSearch(enabled bool) Option {
	return func(e *Engine) { e.grounded = enabled }
}

// WithClock 替换时间来源
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithFetcher 替换正文抓取函数
func WithFetcher(fetch func(url string) (string, error)) Option {
	return func(e *Engine) { e.fetch = fetch }
}

// NewEngine 创建引擎实例
func NewEngine(gen llm.Generator, opts ...Option) *Engine {
	e := &Engine{
		gen:   gen,
		fetch: fetchAndCleanContent,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run 执行一次完整的生成任务，任一步失败立即返回，不保留中间结果
func (e *Engine) Run(ctx context.Context, profile *model.BusinessProfile) (*model.DailyActivity, error) {
	if profile == nil {
		return nil, fmt.Errorf("business profile is required")
	}
	runID := uuid.NewString()
	log := logger.WithRun(runID)
	log.Infof("开始为 [%s] 生成每日内容", profile.Name)
	start := e.now()

	keywords, err := e.TrendingKeywords(ctx, profile)
	if err != nil {
		log.Errorf("趋势关键词分析失败: %v", err)
		return nil, err
	}
	topic := keywords[0].Keyword
	log.Infof("解析到 %d 个关键词，主题: %s", len(keywords), topic)

	seo, err := e.SEOSuggestions(ctx, profile, topic, keywords)
	if err != nil {
		log.Errorf("生成 SEO 建议失败: %v", err)
		return nil, err
	}

	post, err := e.CreateSocialPost(ctx, profile, topic)
	if err != nil {
		log.Errorf("生成社媒帖子失败: %v", err)
		return nil, err
	}

	now := e.now()
	log.Infof("每日内容生成完成，耗时 %s", now.Sub(start).Round(time.Millisecond))
	return &model.DailyActivity{
		ID:       runID,
		Date:     now.Format(DateLayout),
		Keywords: keywords,
		SEO:      *seo,
		Post:     *post,
	}, nil
}

// TrendingKeywords 分析与业务相关的今日趋势关键词
func (e *Engine) TrendingKeywords(ctx context.Context, profile *model.BusinessProfile) ([]model.TrendingKeyword, error) {
	// 模型自带联网搜索时不再额外检索新闻
	var headlines string
	if e.searcher != nil && !e.grounded {
		headlines = e.headlines(ctx, profile)
	}

	raw, err := e.gen.GenerateText(ctx, &llm.TextRequest{
		Prompt:   prompt.TrendingKeywords(profile, headlines),
		Grounded: e.grounded,
	})
	if err != nil {
		return nil, fmt.Errorf("trending keywords: %w", err)
	}
	return parser.ParseKeywords(raw)
}

// SEOSuggestions 生成 meta description 与 meta keywords
func (e *Engine) SEOSuggestions(ctx context.Context, profile *model.BusinessProfile, topic string, keywords []model.TrendingKeyword) (*model.SEOSuggestions, error) {
	raw, err := e.gen.GenerateText(ctx, &llm.TextRequest{
		Prompt: prompt.SEOSuggestions(profile, topic, keywords),
		Schema: &prompt.SEOShape,
	})
	if err != nil {
		return nil, fmt.Errorf("seo suggestions: %w", err)
	}

	seo, err := parser.Decode[model.SEOSuggestions](raw, prompt.SEOShape)
	if err != nil {
		return nil, err
	}
	warnMissing(logger.Log.WithField("shape", prompt.SEOShape.Name), prompt.SEOShape.Missing(raw))
	// 数量只是对上游的要求，不做强制校验
	if len(seo.MetaDescriptions) != expectedMetaDescriptions || len(seo.MetaKeywords) != expectedMetaKeywords {
		logger.Log.Warnf("SEO 建议数量与预期不符: descriptions=%d keywords=%d",
			len(seo.MetaDescriptions), len(seo.MetaKeywords))
	}
	return &seo, nil
}

// CreateSocialPost 先生成文案与配图 prompt，再据此生成图片
func (e *Engine) CreateSocialPost(ctx context.Context, profile *model.BusinessProfile, topic string) (*model.SocialPost, error) {
	raw, err := e.gen.GenerateText(ctx, &llm.TextRequest{
		Prompt: prompt.SocialPost(profile, topic),
		Schema: &prompt.PostShape,
	})
	if err != nil {
		return nil, fmt.Errorf("social post: %w", err)
	}

	content, err := parser.Decode[model.PostContent](raw, prompt.PostShape)
	if err != nil {
		return nil, err
	}
	warnMissing(logger.Log.WithField("shape", prompt.PostShape.Name), prompt.PostShape.Missing(raw))
	// 没有配图 prompt 无法继续
	if strings.TrimSpace(content.ImagePrompt) == "" {
		return nil, &parser.DecodeError{Shape: prompt.PostShape.Name, Err: fmt.Errorf("imagePrompt is empty")}
	}

	imageURL, err := e.GenerateImage(ctx, content.ImagePrompt)
	if err != nil {
		return nil, err
	}

	return &model.SocialPost{
		Text:                content.PostText,
		InteractiveQuestion: content.InteractiveQuestion,
		CTASuggestion:       content.CTASuggestion,
		ImageURL:            imageURL,
		ImagePrompt:         content.ImagePrompt,
	}, nil
}

// GenerateImage 生成一张图片，返回 data URI
func (e *Engine) GenerateImage(ctx context.Context, imagePrompt string) (string, error) {
	url, err := e.gen.GenerateImage(ctx, imagePrompt)
	if err != nil {
		return "", fmt.Errorf("image generation: %w", err)
	}
	return url, nil
}

// RegenerateImagePrompt 重新构思一条与之前不同的配图 prompt
func (e *Engine) RegenerateImagePrompt(ctx context.Context, profile *model.BusinessProfile, topic string) (string, error) {
	raw, err := e.gen.GenerateText(ctx, &llm.TextRequest{Prompt: prompt.ImagePrompt(profile, topic)})
	if err != nil {
		return "", fmt.Errorf("image prompt: %w", err)
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", &llm.EmptyResultError{Op: "image prompt regeneration"}
	}
	return text, nil
}

func warnMissing(log *logrus.Entry, missing []string) {
	if len(missing) > 0 {
		log.Warnf("上游响应缺少必填字段: %s", strings.Join(missing, ", "))
	}
}
