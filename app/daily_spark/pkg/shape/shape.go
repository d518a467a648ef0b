package shape

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind 字段类型
type Kind string

const (
	String      Kind = "string"
	Integer     Kind = "integer"
	StringArray Kind = "array<string>"
)

// Field 结构化响应中的单个字段
type Field struct {
	Name        string
	Kind        Kind
	Description string
}

// Shape 描述上游应返回的 JSON 对象结构。
// Required 只是对生成方的要求，本地不强制校验，调用方可通过 Missing 自行检查。
type Shape struct {
	Name     string
	Fields   []Field
	Required []string
}

// Missing 返回 raw 中缺失（或为 null）的必填字段，raw 无法解析时返回全部必填字段
func (s Shape) Missing(raw string) []string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(Clean(raw)), &obj); err != nil {
		return append([]string(nil), s.Required...)
	}
	var missing []string
	for _, name := range s.Required {
		v, ok := obj[name]
		if !ok || string(v) == "null" {
			missing = append(missing, name)
		}
	}
	return missing
}

// Describe 渲染成给不支持 response schema 的模型看的 JSON 模板
func (s Shape) Describe() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, f := range s.Fields {
		var example string
		switch f.Kind {
		case StringArray:
			example = fmt.Sprintf("[%q]", f.Description)
		case Integer:
			example = "0"
		default:
			example = fmt.Sprintf("%q", f.Description)
		}
		fmt.Fprintf(&sb, "\t%q: %s", f.Name, example)
		if i < len(s.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// Clean 去掉首尾空白以及 Markdown 代码块标记
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
