package render

import (
	"strings"
	"time"

	"github.com/govtjobs-alert/bot/app/classify"
	"github.com/govtjobs-alert/bot/app/feed"
)

// Format renders the message body (Telegram HTML) and action controls for
// an item. Total over all categories: anything unrecognized falls back to
// the general template.
func Format(item feed.Item, category classify.Category) (string, []Action) {
	switch category {
	case classify.CategoryResult:
		return templateResult(item)
	case classify.CategoryAdmitCard:
		return templateAdmitCard(item)
	case classify.CategoryLastDate:
		return templateAlert(item)
	case classify.CategoryExamUpdate:
		return templateExamUpdate(item)
	default:
		return templateGeneral(item)
	}
}

// Escape makes interpolated text safe for Telegram HTML parse mode.
func Escape(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// value escapes text, substituting a fallback for blanks. Templates never
// render an empty field.
func value(text, fallback string) string {
	if strings.TrimSpace(text) == "" {
		return fallback
	}
	return Escape(strings.TrimSpace(text))
}

func sourceLine(item feed.Item) string {
	return value(item.Source, "Govt Update")
}

func dateLine(item feed.Item) string {
	if item.PublishedAt != nil {
		return item.PublishedAt.Format("02 Jan 2006")
	}
	return time.Now().Format("02 Jan 2006")
}

func summaryLine(item feed.Item, max int) string {
	summary := Escape(item.Summary)
	if runes := []rune(summary); len(runes) > max {
		summary = string(runes[:max])
	}
	return summary
}
