package util

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips every tag; API text is rendered in a terminal.
var textPolicy = bluemonday.StrictPolicy()

// SanitizeText removes markup from text received from the API and
// collapses it to a single line.
func SanitizeText(s string) string {
	s = html.UnescapeString(textPolicy.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}

// FormatScore formats a review score as "4/5" followed by stars.
func FormatScore(score int) string {
	stars := score
	if stars < 0 {
		stars = 0
	}
	if stars > 5 {
		stars = 5
	}
	return fmt.Sprintf("%d/5 %s%s", score, strings.Repeat("★", stars), strings.Repeat("☆", 5-stars))
}

// FormatReviewCount formats the number of reviews for display.
func FormatReviewCount(n int) string {
	switch n {
	case 0:
		return "No reviews yet"
	case 1:
		return "1 review"
	default:
		return fmt.Sprintf("%d reviews", n)
	}
}

// ValidateScore reports whether s is a score the review form accepts.
func ValidateScore(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("score must be a number")
	}
	if n < 0 || n > 5 {
		return fmt.Errorf("score must be between 0 and 5")
	}
	return nil
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
