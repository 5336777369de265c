package content

import (
	"fmt"
	"strings"
)

// DefaultReadingWPM is the assumed reading speed when none is configured
const DefaultReadingWPM = 200

// ReadingTime estimates reading time in minutes for a body of text,
// rounding up. Words are whitespace-separated tokens; markup is counted
// like any other word, matching how the estimate is surfaced to readers.
func ReadingTime(body string, wpm int) int {
	if wpm <= 0 {
		wpm = DefaultReadingWPM
	}
	words := len(strings.Fields(body))
	return (words + wpm - 1) / wpm
}

// PlaceholderCover returns a deterministic cover image URL derived from
// the post ID, used when the author supplied none.
func PlaceholderCover(postID int64) string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/800/400", postID)
}
