package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/model"
)

const maxScore = 100

var (
	keywordRe     = regexp.MustCompile(`KEYWORD:\s*(.*?)\s*\|`)
	explanationRe = regexp.MustCompile(`EXPLANATION:\s*(.*?)\s*\|`)
	scoreRe       = regexp.MustCompile(`SCORE:\s*(\d+)`)
)

// ParseError 关键词文本中一条合法记录都没有
type ParseError struct {
	Lines int // 参与解析的非空行数
}

func (e *ParseError) Error() string {
	return "could not parse any keywords from the AI response, the format may have changed"
}

// ParseKeywords 解析形如 `KEYWORD: x | EXPLANATION: y | SCORE: n` 的多行文本。
// 格式不完整的行直接跳过，结果保持原始行序。
func ParseKeywords(raw string) ([]model.TrendingKeyword, error) {
	var keywords []model.TrendingKeyword
	lines := 0
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines++
		if kw, ok := parseLine(line); ok {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return nil, &ParseError{Lines: lines}
	}
	return keywords, nil
}

func parseLine(line string) (model.TrendingKeyword, bool) {
	keyword := keywordRe.FindStringSubmatch(line)
	explanation := explanationRe.FindStringSubmatch(line)
	score := scoreRe.FindStringSubmatch(line)
	if keyword == nil || explanation == nil || score == nil {
		return model.TrendingKeyword{}, false
	}

	n, err := strconv.Atoi(score[1])
	if err != nil || n > maxScore {
		return model.TrendingKeyword{}, false
	}

	return model.TrendingKeyword{
		Keyword:     strings.TrimSpace(keyword[1]),
		Explanation: strings.TrimSpace(explanation[1]),
		Score:       n,
	}, true
}
