package model

import "slices"

// BusinessProfile 业务画像，所有生成请求的唯一输入
type BusinessProfile struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	TargetAudience string `json:"targetAudience"`
}

// TrendingKeyword 趋势关键词
type TrendingKeyword struct {
	Keyword     string `json:"keyword"`
	Explanation string `json:"explanation"`
	Score       int    `json:"score"` // 热度评分 0-100
}

// SEOSuggestions SEO 建议
type SEOSuggestions struct {
	MetaDescriptions []string `json:"metaDescriptions"` // 期望 2 条
	MetaKeywords     []string `json:"metaKeywords"`     // 期望 5 个
}

// PostContent LLM 返回的社媒帖子原始内容（尚未生成图片）
type PostContent struct {
	ImagePrompt         string `json:"imagePrompt"`
	PostText            string `json:"postText"`
	InteractiveQuestion string `json:"interactiveQuestion"`
	CTASuggestion       string `json:"ctaSuggestion"`
}

// SocialPost 社媒帖子
type SocialPost struct {
	Text                string `json:"text"`
	InteractiveQuestion string `json:"interactiveQuestion"`
	CTASuggestion       string `json:"ctaSuggestion"`
	ImageURL            string `json:"imageUrl"` // data URI
	ImagePrompt         string `json:"imagePrompt"`
}

// DailyActivity 一次完整生成的每日内容包
type DailyActivity struct {
	ID       string            `json:"id"`
	Date     string            `json:"date"`
	Keywords []TrendingKeyword `json:"keywords"`
	SEO      SEOSuggestions    `json:"seo"`
	Post     SocialPost        `json:"post"`
}

// Clone 深拷贝，避免调用方共享切片
func (a *DailyActivity) Clone() *DailyActivity {
	if a == nil {
		return nil
	}
	c := *a
	c.Keywords = slices.Clone(a.Keywords)
	c.SEO.MetaDescriptions = slices.Clone(a.SEO.MetaDescriptions)
	c.SEO.MetaKeywords = slices.Clone(a.SEO.MetaKeywords)
	return &c
}

// Topic 返回首个关键词作为帖子主题
func (a *DailyActivity) Topic() string {
	if a == nil || len(a.Keywords) == 0 {
		return ""
	}
	return a.Keywords[0].Keyword
}
