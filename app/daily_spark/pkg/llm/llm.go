package llm

import (
	"context"
	"fmt"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/shape"
)

// TextRequest 文本生成请求
type TextRequest struct {
	Prompt   string
	Schema   *shape.Shape // 非空时要求返回 JSON
	Grounded bool         // 允许模型使用联网搜索
}

// TextGenerator 文本生成
type TextGenerator interface {
	GenerateText(ctx context.Context, req *TextRequest) (string, error)
}

// ImageGenerator 图片生成，返回可直接展示的 data URI
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Generator 上游生成式 AI 服务
type Generator interface {
	TextGenerator
	ImageGenerator
}

// EmptyResultError 上游调用成功但没有返回内容
type EmptyResultError struct {
	Op string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("%s failed, no result returned", e.Op)
}

// UpstreamCallError 上游传输或服务层错误
type UpstreamCallError struct {
	Op  string
	Err error
}

func (e *UpstreamCallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamCallError) Unwrap() error { return e.Err }

// Combine 将独立的文本、图片后端拼成一个 Generator
func Combine(text TextGenerator, image ImageGenerator) Generator {
	return combined{TextGenerator: text, ImageGenerator: image}
}

type combined struct {
	TextGenerator
	ImageGenerator
}
