package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type textFunc func(ctx context.Context, req *TextRequest) (string, error)

func (f textFunc) GenerateText(ctx context.Context, req *TextRequest) (string, error) {
	return f(ctx, req)
}

type imageFunc func(ctx context.Context, prompt string) (string, error)

func (f imageFunc) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func TestCombine(t *testing.T) {
	g := Combine(
		textFunc(func(ctx context.Context, req *TextRequest) (string, error) { return "text:" + req.Prompt, nil }),
		imageFunc(func(ctx context.Context, prompt string) (string, error) { return "image:" + prompt, nil }),
	)

	got, err := g.GenerateText(context.Background(), &TextRequest{Prompt: "a"})
	require.NoError(t, err)
	assert.Equal(t, "text:a", got)

	got, err = g.GenerateImage(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "image:b", got)
}

func TestLimited_PassesThrough(t *testing.T) {
	calls := 0
	g := NewLimited(Combine(
		textFunc(func(ctx context.Context, req *TextRequest) (string, error) { calls++; return "ok", nil }),
		imageFunc(func(ctx context.Context, prompt string) (string, error) { calls++; return "", &EmptyResultError{Op: "image generation"} }),
	), 0, 0)

	_, err := g.GenerateText(context.Background(), &TextRequest{})
	require.NoError(t, err)

	_, err = g.GenerateImage(context.Background(), "p")
	var empty *EmptyResultError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, "image generation failed, no result returned", err.Error())
	assert.Equal(t, 2, calls)
}

func TestLimited_WaitHonoursContext(t *testing.T) {
	g := NewLimited(Combine(
		textFunc(func(ctx context.Context, req *TextRequest) (string, error) { return "ok", nil }),
		nil,
	), 1, 1)

	_, err := g.GenerateText(context.Background(), &TextRequest{})
	require.NoError(t, err)

	// 第二次调用需要等待约一分钟，超时后应直接返回
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = g.GenerateText(ctx, &TextRequest{})
	assert.Error(t, err)
}

func TestUpstreamCallError(t *testing.T) {
	cause := errors.New("connection reset")
	err := error(&UpstreamCallError{Op: "gemini generate content", Err: cause})
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "gemini generate content: connection reset", err.Error())
}
