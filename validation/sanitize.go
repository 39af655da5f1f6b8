package validation

import "regexp"

// scriptRE matches <script ...>...</script> blocks, case-insensitively, with
// the body matched non-greedily across newlines.
var scriptRE = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)

// Sanitize walks the body and strips script blocks from every string value.
// It descends through nested objects and through arrays, including arrays of
// objects. The body is mutated in place and also returned for chaining.
// Sanitization runs before the field validators so they see clean values.
func Sanitize(body map[string]any) map[string]any {
	for key, value := range body {
		body[key] = sanitizeValue(value)
	}
	return body
}

func sanitizeValue(value any) any {
	switch v := value.(type) {
	case string:
		return scriptRE.ReplaceAllString(v, "")
	case map[string]any:
		return Sanitize(v)
	case []any:
		for i, elem := range v {
			v[i] = sanitizeValue(elem)
		}
		return v
	default:
		return value
	}
}
