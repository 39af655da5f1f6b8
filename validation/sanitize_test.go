package validation

import (
	"reflect"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		expected map[string]any
	}{
		{
			name:     "strips script tag from string",
			input:    map[string]any{"name": "a<script>alert(1)</script>b"},
			expected: map[string]any{"name": "ab"},
		},
		{
			name:     "case insensitive",
			input:    map[string]any{"bio": "x<SCRIPT>evil()</SCRIPT>y"},
			expected: map[string]any{"bio": "xy"},
		},
		{
			name:     "script tag with attributes",
			input:    map[string]any{"content": `<script src="evil.js">payload</script>safe`},
			expected: map[string]any{"content": "safe"},
		},
		{
			name:     "non-greedy across multiple blocks",
			input:    map[string]any{"msg": "<script>a</script>keep<script>b</script>"},
			expected: map[string]any{"msg": "keep"},
		},
		{
			name:     "multiline script body",
			input:    map[string]any{"msg": "a<script>\nline1\nline2\n</script>b"},
			expected: map[string]any{"msg": "ab"},
		},
		{
			name: "descends into nested objects",
			input: map[string]any{
				"seo": map[string]any{"metaTitle": "<script>x</script>ok"},
			},
			expected: map[string]any{
				"seo": map[string]any{"metaTitle": "ok"},
			},
		},
		{
			name: "descends into arrays of objects",
			input: map[string]any{
				"images": []any{
					map[string]any{"caption": "<script>x</script>sunset"},
				},
			},
			expected: map[string]any{
				"images": []any{
					map[string]any{"caption": "sunset"},
				},
			},
		},
		{
			name:     "descends into arrays of strings",
			input:    map[string]any{"tags": []any{"go", "<script>x</script>web"}},
			expected: map[string]any{"tags": []any{"go", "web"}},
		},
		{
			name:     "leaves non-string values alone",
			input:    map[string]any{"count": float64(3), "flag": true, "none": nil},
			expected: map[string]any{"count": float64(3), "flag": true, "none": nil},
		},
		{
			name:     "plain strings untouched",
			input:    map[string]any{"name": "no markup here"},
			expected: map[string]any{"name": "no markup here"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Sanitize() = %#v, want %#v", got, tt.expected)
			}
		})
	}
}

func TestSanitizeMutatesInPlace(t *testing.T) {
	body := map[string]any{"name": "a<script>x</script>b"}
	Sanitize(body)
	if body["name"] != "ab" {
		t.Errorf("body not mutated in place, got %q", body["name"])
	}
}
