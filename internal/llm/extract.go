package llm

import "errors"

var ErrNoJSON = errors.New("no balanced JSON object in model output")

// ExtractJSON locates the first top-level JSON object in model output
// by brace matching, ignoring braces inside string literals. Models
// often wrap their JSON in prose or markdown fences; everything around
// the object is discarded. An unbalanced object is a parse failure, not
// a partial acceptance.
func ExtractJSON(text string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				// Closing brace before any opening brace.
				return "", ErrNoJSON
			}
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", ErrNoJSON
}
