package prompt

import (
	"fmt"
	"strings"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/model"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/shape"
)

// SEOShape SEO 建议的响应结构
var SEOShape = shape.Shape{
	Name: "seo",
	Fields: []shape.Field{
		{Name: "metaDescriptions", Kind: shape.StringArray, Description: "An array of 2 SEO-optimized meta descriptions."},
		{Name: "metaKeywords", Kind: shape.StringArray, Description: "An array of 5 relevant meta keywords."},
	},
	Required: []string{"metaDescriptions", "metaKeywords"},
}

// PostShape 社媒帖子内容的响应结构
var PostShape = shape.Shape{
	Name: "post",
	Fields: []shape.Field{
		{Name: "imagePrompt", Kind: shape.String, Description: "A detailed prompt for an AI image generator."},
		{Name: "postText", Kind: shape.String, Description: "The social media post text, including hashtags."},
		{Name: "interactiveQuestion", Kind: shape.String, Description: "A highly engaging, open-ended question to encourage comments and shares."},
		{Name: "ctaSuggestion", Kind: shape.String, Description: "A short, compelling call-to-action for a button, e.g., 'Learn More'."},
	},
	Required: []string{"imagePrompt", "postText", "interactiveQuestion", "ctaSuggestion"},
}

// TrendingKeywords 趋势关键词分析。headlines 为可选的新闻上下文
func TrendingKeywords(p *model.BusinessProfile, headlines string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `Analyze today's internet trends relevant to a business with the following profile:
- Name: %s
- Description: %s
- Target Audience: %s
`, p.Name, p.Description, p.TargetAudience)

	if headlines != "" {
		fmt.Fprintf(&sb, "\nRecent news that may be relevant:\n%s\n", headlines)
	}

	sb.WriteString(`
Identify the top 3 trending search keywords or topics. For each, provide a keyword, a brief explanation of its relevance, and a popularity score from 1-100.

IMPORTANT: Format EACH keyword on a new line EXACTLY like this, without any other text, titles, or introductions:
KEYWORD: [The Keyword] | EXPLANATION: [Brief explanation] | SCORE: [Score from 1-100]`)
	return sb.String()
}

// SEOSuggestions 以 topic 为主题生成 SEO 建议
func SEOSuggestions(p *model.BusinessProfile, topic string, keywords []model.TrendingKeyword) string {
	names := make([]string, 0, len(keywords))
	for _, k := range keywords {
		names = append(names, k.Keyword)
	}
	return fmt.Sprintf(`For a business named "%s" that %s, targeting %s,
with today's main topic "%s" and considering today's trending keywords: %s.

Generate SEO content. I need exactly 2 meta descriptions (155-160 characters) and 5 meta keywords.`,
		p.Name, p.Description, p.TargetAudience, topic, strings.Join(names, ", "))
}

// SocialPost 帖子文案 + 配图 prompt
func SocialPost(p *model.BusinessProfile, topic string) string {
	return fmt.Sprintf(`Create content for a social media post for a business named "%s" (%s).
The post is about this trending topic: "%s".

Your response must be a JSON object with four fields: "imagePrompt", "postText", "interactiveQuestion", and "ctaSuggestion".

1. "imagePrompt": A highly detailed and creative prompt for an AI image generator to create a visually stunning, professional, and unique image. Specify a clear subject, the setting, the style (e.g., photorealistic, minimalist, abstract, 3D render), the mood (e.g., energetic, serene, futuristic), and composition details (e.g., close-up, wide-angle shot).
2. "postText": A short, engaging social media post body (around 2-3 sentences). Include 3-5 relevant hashtags at the end.
3. "interactiveQuestion": A separate, highly engaging, open-ended question related to the topic that encourages user comments and shares.
4. "ctaSuggestion": A short, compelling text for a call-to-action button (e.g., 'Learn More', 'Shop Now', 'Join the Conversation').`,
		p.Name, p.Description, topic)
}

// ImagePrompt 重新生成一条与以往不同的配图 prompt，返回纯文本
func ImagePrompt(p *model.BusinessProfile, topic string) string {
	return fmt.Sprintf(`You are an expert creative director. Your task is to generate a new, fresh, and creative prompt for an AI image generator.
The image is for a social media post for a business with this profile:
- Name: %s
- Description: %s
- Target Audience: %s

The topic of the post is "%s".

Generate a single, highly detailed image prompt. The prompt should be unique and different from previous ones. It must specify:
- A clear subject.
- The setting or background.
- A specific artistic style (e.g., photorealistic, minimalist, abstract, 3D render, vibrant illustration, cinematic).
- The mood or atmosphere (e.g., energetic, serene, futuristic, nostalgic, professional).
- Composition details (e.g., close-up, wide-angle shot, rule of thirds).
- Lighting (e.g., golden hour, dramatic studio lighting, neon glow).

Return ONLY the text for the image prompt, with no labels, titles, quotation marks, or any other surrounding text.`,
		p.Name, p.Description, p.TargetAudience, topic)
}
