package factory

import (
	"context"
	"fmt"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/config"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/llm"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/llm/gemini"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/llm/openai"
)

// NewGenerator 根据配置组装文本 + 图片后端，并加上限流。
// 返回值 grounded 表示文本后端自带联网搜索。
func NewGenerator(ctx context.Context, cfg *config.Config) (llm.Generator, bool, error) {
	if cfg.Image.APIKey == "" {
		return nil, false, fmt.Errorf("image api key is missing")
	}

	var (
		gen      llm.Generator
		grounded bool
	)
	switch cfg.LLM.Provider {
	case "", "gemini":
		textKey := cfg.LLM.APIKey
		if textKey == "" {
			textKey = cfg.Image.APIKey
		}
		if textKey == cfg.Image.APIKey {
			c, err := gemini.NewClient(ctx, textKey, cfg.LLM.Model, cfg.Image.Model)
			if err != nil {
				return nil, false, err
			}
			gen = c
		} else {
			text, err := gemini.NewClient(ctx, textKey, cfg.LLM.Model, "")
			if err != nil {
				return nil, false, err
			}
			images, err := gemini.NewClient(ctx, cfg.Image.APIKey, "", cfg.Image.Model)
			if err != nil {
				return nil, false, err
			}
			gen = llm.Combine(text, images)
		}
		grounded = true

	case "openai":
		if cfg.LLM.BaseURL == "" || cfg.LLM.Model == "" {
			return nil, false, fmt.Errorf("openai provider requires base_url and model")
		}
		text, err := openai.NewClient(ctx, cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			return nil, false, err
		}
		images, err := gemini.NewClient(ctx, cfg.Image.APIKey, "", cfg.Image.Model)
		if err != nil {
			return nil, false, err
		}
		gen = llm.Combine(text, images)

	default:
		return nil, false, fmt.Errorf("unknown llm provider: %s", cfg.LLM.Provider)
	}

	return llm.NewLimited(gen, cfg.Concurrency.QPS, cfg.Concurrency.RPM), grounded, nil
}
