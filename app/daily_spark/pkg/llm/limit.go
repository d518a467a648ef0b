package llm

import (
	"context"

	"golang.org/x/time/rate"
)

// Limited 对所有上游调用做限流
type Limited struct {
	next    Generator
	limiter *rate.Limiter
}

// NewLimited rpm 为每分钟请求数，qps 为突发量；rpm <= 0 表示不限流
func NewLimited(next Generator, qps, rpm int) *Limited {
	limit := rate.Inf
	if rpm > 0 {
		limit = rate.Limit(float64(rpm) / 60.0)
	}
	if qps <= 0 {
		qps = 1
	}
	return &Limited{next: next, limiter: rate.NewLimiter(limit, qps)}
}

var _ Generator = (*Limited)(nil)

func (l *Limited) GenerateText(ctx context.Context, req *TextRequest) (string, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return l.next.GenerateText(ctx, req)
}

func (l *Limited) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return l.next.GenerateImage(ctx, prompt)
}
