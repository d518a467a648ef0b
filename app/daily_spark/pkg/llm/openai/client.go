package openai

import (
	"context"
	"fmt"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/llm"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/shape"
)

const (
	textSystemPrompt = "You are a marketing assistant for small businesses."
	jsonSystemPrompt = "You are a JSON generator. Output only the JSON object, without markdown."
)

// Client OpenAI 兼容协议的文本客户端（DeepSeek、Qwen 等），不支持图片生成
type Client struct {
	chatModel model.ChatModel
}

// NewClient 创建 OpenAI 兼容客户端
func NewClient(ctx context.Context, baseURL, apiKey, modelName string) (*Client, error) {
	chatModel, err := einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   modelName,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}
	return NewWithModel(chatModel), nil
}

// NewWithModel 使用已有的 ChatModel
func NewWithModel(cm model.ChatModel) *Client {
	return &Client{chatModel: cm}
}

var _ llm.TextGenerator = (*Client)(nil)

// GenerateText 不支持联网搜索，Grounded 由调用方通过新闻上下文补足
func (c *Client) GenerateText(ctx context.Context, req *llm.TextRequest) (string, error) {
	resp, err := c.chatModel.Generate(ctx, messages(req))
	if err != nil {
		return "", &llm.UpstreamCallError{Op: "chat completion", Err: err}
	}
	if resp == nil {
		return "", &llm.EmptyResultError{Op: "chat completion"}
	}
	return resp.Content, nil
}

func messages(req *llm.TextRequest) []*schema.Message {
	if req.Schema == nil {
		return []*schema.Message{
			{Role: schema.System, Content: textSystemPrompt},
			{Role: schema.User, Content: req.Prompt},
		}
	}
	return []*schema.Message{
		{Role: schema.System, Content: jsonSystemPrompt},
		{Role: schema.User, Content: req.Prompt + "\n\n" + jsonInstruction(req.Schema)},
	}
}

func jsonInstruction(s *shape.Shape) string {
	return "Respond strictly with a JSON object of this form:\n" + s.Describe()
}
