package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/model"
	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/shape"
)

var testSEOShape = shape.Shape{
	Name: "seo",
	Fields: []shape.Field{
		{Name: "metaDescriptions", Kind: shape.StringArray},
		{Name: "metaKeywords", Kind: shape.StringArray},
	},
	Required: []string{"metaDescriptions", "metaKeywords"},
}

func TestDecode(t *testing.T) {
	raw := "\n  {\"metaDescriptions\":[\"one\",\"two\"],\"metaKeywords\":[\"a\",\"b\",\"c\"]}  \n"

	got, err := Decode[model.SEOSuggestions](raw, testSEOShape)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, got.MetaDescriptions)
	// 数量不做校验
	assert.Len(t, got.MetaKeywords, 3)
}

func TestDecode_CodeFence(t *testing.T) {
	raw := "```json\n{\"imagePrompt\":\"a robot\",\"postText\":\"hello #go\"}\n```"

	got, err := Decode[model.PostContent](raw, shape.Shape{Name: "post"})
	require.NoError(t, err)
	assert.Equal(t, "a robot", got.ImagePrompt)
	assert.Equal(t, "hello #go", got.PostText)
	assert.Empty(t, got.CTASuggestion)
}

func TestDecode_Invalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"not json at all",
		`{"metaDescriptions": ["unterminated"`,
		`{"metaDescriptions": "should be a list"}`,
	} {
		_, err := Decode[model.SEOSuggestions](raw, testSEOShape)
		require.Error(t, err, "raw=%q", raw)

		var derr *DecodeError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "seo", derr.Shape)
	}
}

func TestDecode_Idempotent(t *testing.T) {
	raw := `{"metaDescriptions":["x","y"],"metaKeywords":["1","2","3","4","5"]}`

	first, err := Decode[model.SEOSuggestions](raw, testSEOShape)
	require.NoError(t, err)
	second, err := Decode[model.SEOSuggestions](raw, testSEOShape)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecode_MissingFieldsAreLeftToCaller(t *testing.T) {
	raw := `{"metaDescriptions":["only"],"metaKeywords":null}`

	got, err := Decode[model.SEOSuggestions](raw, testSEOShape)
	require.NoError(t, err)
	assert.Nil(t, got.MetaKeywords)
	assert.Equal(t, []string{"metaKeywords"}, testSEOShape.Missing(raw))
}
