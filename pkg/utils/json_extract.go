package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"travigo/internal/models/response_models"
)

// ExtractJSONObject returns the largest balanced {...} block in text that decodes as a JSON
// object. Braces inside string literals are ignored. Smaller objects, such as an input
// fragment echoed ahead of the payload, lose to the full document; ties keep the earliest.
func ExtractJSONObject(text string) (json.RawMessage, error) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return nil, fmt.Errorf("%w: no JSON object found", ErrParse)
	}

	var best string
	var lastErr error
	for start != -1 {
		next := start + 1
		if end := matchingBrace(text, start); end != -1 {
			candidate := text[start : end+1]
			var obj map[string]json.RawMessage
			if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
				lastErr = err
			} else if len(candidate) > len(best) {
				best = candidate
			}
			next = end + 1
		}

		i := strings.IndexByte(text[next:], '{')
		if i == -1 {
			break
		}
		start = next + i
	}

	if best != "" {
		return json.RawMessage(best), nil
	}
	if lastErr == nil {
		lastErr = errors.New("unbalanced braces")
	}
	return nil, fmt.Errorf("%w: %v", ErrParse, lastErr)
}

// ExtractItinerary pulls the itinerary object out of a raw completion.
func ExtractItinerary(text string) (*response_models.AIItineraryResult, error) {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return nil, err
	}
	var result response_models.AIItineraryResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &result, nil
}

// matchingBrace returns the index of the brace closing the one at start, or -1.
func matchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
