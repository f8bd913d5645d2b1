package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const summaryMaxLen = 400

// CleanSummary strips HTML markup from a feed entry summary, collapses
// whitespace and caps the length.
func CleanSummary(raw string) string {
	if raw == "" {
		return ""
	}

	text := raw
	if strings.ContainsAny(raw, "<&") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
		if err == nil {
			text = doc.Text()
		}
	}

	text = strings.Join(strings.Fields(text), " ")
	return Truncate(text, summaryMaxLen)
}

// Truncate caps s at max bytes without splitting a rune.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Cut on a rune boundary so capped summaries stay valid UTF-8
	runes := []rune(s)
	for len(string(runes)) > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
