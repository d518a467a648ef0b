package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/config"
)

func TestNewGenerator_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		msg  string
	}{
		{
			name: "no image key",
			cfg:  config.Config{LLM: config.LLMConfig{Provider: "openai"}},
			msg:  "image api key is missing",
		},
		{
			name: "openai without endpoint",
			cfg: config.Config{
				LLM:   config.LLMConfig{Provider: "openai", APIKey: "sk"},
				Image: config.ImageConfig{APIKey: "g"},
			},
			msg: "openai provider requires base_url and model",
		},
		{
			name: "unknown provider",
			cfg: config.Config{
				LLM:   config.LLMConfig{Provider: "claude"},
				Image: config.ImageConfig{APIKey: "g"},
			},
			msg: "unknown llm provider: claude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, grounded, err := NewGenerator(context.Background(), &tt.cfg)
			assert.EqualError(t, err, tt.msg)
			assert.Nil(t, gen)
			assert.False(t, grounded)
		})
	}
}
