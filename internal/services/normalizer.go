package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	codeFence     = "```"
	jsonCodeFence = "```json"
)

// StripCodeFence removes a markdown code fence wrapping the model output.
// Only an exact leading "```" or "```json" and an exact trailing "```" are removed.
func StripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, codeFence) {
		return text
	}

	if strings.HasPrefix(text, jsonCodeFence) {
		text = strings.TrimPrefix(text, jsonCodeFence)
	} else {
		text = strings.TrimPrefix(text, codeFence)
	}

	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, codeFence)

	return strings.TrimSpace(text)
}

// ParseModelJSON strips an optional code fence and decodes the rest as JSON.
func ParseModelJSON(raw string) (interface{}, error) {
	jsonStr := StripCodeFence(raw)

	var result interface{}
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, &AnalysisError{
			Kind:    KindNormalization,
			Message: fmt.Sprintf("model returned invalid JSON: %v", err),
			Err:     err,
		}
	}

	return result, nil
}
