package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/genai"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/llm"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/shape"
)

const (
	DefaultTextModel  = "gemini-2.5-pro"
	DefaultImageModel = "imagen-4.0-generate-001"

	imageAspectRatio = "1:1"
	defaultMIMEType  = "image/png"
)

// Client Gemini 文本 + Imagen 图片客户端
type Client struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

// NewClient 创建 Gemini 客户端
func NewClient(ctx context.Context, apiKey, textModel, imageModel string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if textModel == "" {
		textModel = DefaultTextModel
	}
	if imageModel == "" {
		imageModel = DefaultImageModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client:     client,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

var _ llm.Generator = (*Client)(nil)

// GenerateText 调用 generateContent
func (c *Client) GenerateText(ctx context.Context, req *llm.TextRequest) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.textModel, genai.Text(req.Prompt), contentConfig(req))
	if err != nil {
		return "", &llm.UpstreamCallError{Op: "gemini generate content", Err: err}
	}
	return resp.Text(), nil
}

// GenerateImage 生成一张 1:1 图片并编码为 data URI
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateImages(ctx, c.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    imageAspectRatio,
	})
	if err != nil {
		return "", &llm.UpstreamCallError{Op: "gemini generate images", Err: err}
	}
	if len(resp.GeneratedImages) == 0 {
		return "", &llm.EmptyResultError{Op: "image generation"}
	}

	img := resp.GeneratedImages[0].Image
	if img == nil || len(img.ImageBytes) == 0 {
		return "", &llm.EmptyResultError{Op: "image generation"}
	}
	return DataURI(img.MIMEType, img.ImageBytes), nil
}

// DataURI 将图片字节编码为 data URI
func DataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = defaultMIMEType
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func contentConfig(req *llm.TextRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toSchema(req.Schema)
	}
	if req.Grounded {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return cfg
}

// toSchema 将 shape.Shape 转为 Gemini response schema
func toSchema(s *shape.Shape) *genai.Schema {
	props := make(map[string]*genai.Schema, len(s.Fields))
	order := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		var fs *genai.Schema
		switch f.Kind {
		case shape.StringArray:
			fs = &genai.Schema{
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			}
		case shape.Integer:
			fs = &genai.Schema{Type: genai.TypeInteger}
		default:
			fs = &genai.Schema{Type: genai.TypeString}
		}
		fs.Description = f.Description
		props[f.Name] = fs
		order = append(order, f.Name)
	}
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		PropertyOrdering: order,
		Required:         append([]string(nil), s.Required...),
	}
}
