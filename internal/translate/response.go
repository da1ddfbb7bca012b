package translate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// decodeResults pulls translation results out of a model response and checks
// that the count matches the request
func decodeResults(text string, expected int) ([]Result, error) {
	text = stripFences(text)
	if text == "" {
		return nil, fmt.Errorf("no text in model response")
	}

	results, err := extractResults(text)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to parse JSON response: %w (response: %s)",
			err, truncate(text, 200),
		)
	}

	if len(results) != expected {
		return nil, fmt.Errorf("expected %d results, got %d", expected, len(results))
	}
	return results, nil
}

var fenceRegex = regexp.MustCompile("```(?:json)?\\s*")

// stripFences removes markdown code fences around a JSON payload
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = fenceRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// fixEscapes rewrites invalid JSON escape sequences like \N (SRT line break)
// to \\N so the payload parses with the literal \N preserved
func fixEscapes(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	i := 0
	for i < len(s) {
		if i < len(s)-1 && s[i] == '\\' {
			next := s[i+1]
			switch next {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
				result.WriteByte(s[i])
				result.WriteByte(next)
				i += 2
			default:
				result.WriteString("\\\\")
				result.WriteByte(next)
				i += 2
			}
		} else {
			result.WriteByte(s[i])
			i++
		}
	}

	return result.String()
}

// extractResults scans the text for the first JSON value holding usable
// translation results, tolerating prose before and after it
func extractResults(text string) ([]Result, error) {
	text = fixEscapes(text)

	for i := 0; i < len(text); i++ {
		if text[i] != '[' && text[i] != '{' {
			continue
		}
		decoder := json.NewDecoder(strings.NewReader(text[i:]))
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			continue
		}
		if results, ok := resultsFromJSON(raw); ok && len(results) > 0 {
			return results, nil
		}
	}
	return nil, fmt.Errorf("no valid translation JSON found in response")
}

var wrapperKeys = []string{"results", "translations", "data", "items"}

func resultsFromJSON(raw json.RawMessage) ([]Result, bool) {
	var results []Result
	if err := json.Unmarshal(raw, &results); err == nil && hasUsableResult(results) {
		return results, true
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, false
	}

	for _, key := range wrapperKeys {
		if fieldRaw, ok := wrapper[key]; ok {
			var fieldResults []Result
			if err := json.Unmarshal(fieldRaw, &fieldResults); err == nil && hasUsableResult(fieldResults) {
				return fieldResults, true
			}
		}
	}

	for _, fieldRaw := range wrapper {
		var fieldResults []Result
		if err := json.Unmarshal(fieldRaw, &fieldResults); err == nil && hasUsableResult(fieldResults) {
			return fieldResults, true
		}
	}

	return nil, false
}

func hasUsableResult(results []Result) bool {
	for _, r := range results {
		if r.Text != "" {
			return true
		}
	}
	return false
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
