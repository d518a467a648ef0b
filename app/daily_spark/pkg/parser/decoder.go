package parser

import (
	"encoding/json"
	"fmt"

	"github.com/iWorld-y/daily_spark/app/daily_spark/pkg/shape"
)

// DecodeError 结构化响应不是合法 JSON，或与目标类型不符
type DecodeError struct {
	Shape string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Shape, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode 将上游返回的 JSON 文本解码为 T。
// 只做语法层面的校验，必填字段是否存在由调用方通过 shape.Missing 检查。
func Decode[T any](raw string, s shape.Shape) (T, error) {
	var v T
	clean := shape.Clean(raw)
	if !json.Valid([]byte(clean)) {
		return v, &DecodeError{Shape: s.Name, Err: fmt.Errorf("invalid JSON payload")}
	}
	if err := json.Unmarshal([]byte(clean), &v); err != nil {
		return v, &DecodeError{Shape: s.Name, Err: err}
	}
	return v, nil
}
