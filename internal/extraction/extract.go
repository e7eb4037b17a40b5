// Package extraction turns generated free text into structured job drafts.
package extraction

import (
	"encoding/json"
	"strings"
)

// FindJSONObject returns the first brace-balanced object in text.
//
// Braces inside JSON string literals are ignored, so nested objects and
// values such as "{placeholder}" do not end the span early. It returns
// ErrNoJSONFound when text has no '{' or the first object never closes.
func FindJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", ErrNoJSONFound
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", ErrNoJSONFound
}

// ExtractJobObject finds the JSON object embedded in rawText and decodes it into a Draft.
// The draft is not checked against any job schema.
func ExtractJobObject(rawText string) (Draft, error) {
	span, err := FindJSONObject(rawText)
	if err != nil {
		return nil, err
	}

	var draft Draft
	if err := json.Unmarshal([]byte(span), &draft); err != nil {
		return nil, &MalformedJSONError{Span: span, Cause: err}
	}
	return draft, nil
}
