package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"study_boost_backend/pkg/logger"

	"go.uber.org/zap"
)

var fenceRegex = regexp.MustCompile("(?s)^```(?:json|JSON)?[ \t]*\r?\n?(.*?)\r?\n?```$")

// ExtractJSON 去掉模型常带的 markdown 代码块包裹和首尾空白
func ExtractJSON(text string) string {
	s := strings.TrimSpace(text)
	if m := fenceRegex.FindStringSubmatch(s); len(m) == 2 {
		s = m[1]
	}
	return strings.TrimSpace(s)
}

// DecodeJSON 解析失败时返回零值和 false，不会 panic
func DecodeJSON[T any](text string) (T, bool) {
	var out T
	raw := ExtractJSON(text)
	if raw == "" {
		return out, false
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logger.Log.Debug("Failed to decode model response", zap.Error(err), zap.Int("chars", len(raw)))
		var zero T
		return zero, false
	}
	return out, true
}
