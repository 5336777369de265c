package content

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "simple title",
			title:    "Hello, World!",
			expected: "hello-world",
		},
		{
			name:     "already slug-like",
			title:    "hello-world",
			expected: "hello-world",
		},
		{
			name:     "mixed case with numbers",
			title:    "Top 10 Posts of 2024",
			expected: "top-10-posts-of-2024",
		},
		{
			name:     "punctuation runs collapse",
			title:    "What?! -- Really...",
			expected: "what-really",
		},
		{
			name:     "leading and trailing junk trimmed",
			title:    "  ...Hello...  ",
			expected: "hello",
		},
		{
			name:     "only punctuation",
			title:    "?!...",
			expected: "",
		},
		{
			name:     "empty title",
			title:    "",
			expected: "",
		},
		{
			name:     "unicode stripped",
			title:    "Café Culture",
			expected: "caf-culture",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.title)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, result, tt.expected)
			}
		})
	}
}
