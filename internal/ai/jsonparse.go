// README: Response normalizer; direct parse, fenced block, outermost braces, then ErrParse.
package ai

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrParse means no strategy produced valid JSON.
var ErrParse = errors.New("ai: model output is not valid JSON")

var fencePattern = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)```")

// ParseModelOutput extracts a JSON value from free model text.
func ParseModelOutput(raw string) (any, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, ErrParse
	}

	if v, ok := tryJSON(text); ok {
		return v, nil
	}

	if strings.Contains(text, "```") {
		// later blocks first
		matches := fencePattern.FindAllStringSubmatch(text, -1)
		for i := len(matches) - 1; i >= 0; i-- {
			if v, ok := tryJSON(strings.TrimSpace(matches[i][1])); ok {
				return v, nil
			}
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		if v, ok := tryJSON(text[start : end+1]); ok {
			return v, nil
		}
	}

	return nil, ErrParse
}

// ParseObject is ParseModelOutput restricted to JSON objects.
func ParseObject(raw string) (map[string]any, error) {
	v, err := ParseModelOutput(raw)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrParse
	}
	return obj, nil
}

func tryJSON(s string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return v, true
}
