package render

import (
	"strings"
	"testing"
	"time"

	"github.com/govtjobs-alert/bot/app/classify"
	"github.com/govtjobs-alert/bot/app/feed"
)

func sampleItem() feed.Item {
	published := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	return feed.Item{
		Fingerprint: "abc123",
		Title:       "SSC CGL 2025 — 17,727 Vacancies",
		Link:        "https://ssc.nic.in",
		Summary:     "SSC CGL 2025 notification released by Staff Selection Commission.",
		PublishedAt: &published,
		Source:      "SSC Updates",
	}
}

func TestFormatTotality(t *testing.T) {
	categories := []classify.Category{
		classify.CategoryResult,
		classify.CategoryAdmitCard,
		classify.CategoryLastDate,
		classify.CategoryExamUpdate,
		classify.CategoryGeneral,
		classify.Category("bogus"),
	}

	for _, category := range categories {
		body, actions := Format(sampleItem(), category)

		if body == "" {
			t.Errorf("Category %s: body must not be empty", category)
		}
		if len(actions) == 0 {
			t.Errorf("Category %s: expected at least one action", category)
			continue
		}
		if actions[0].URL != "https://ssc.nic.in" {
			t.Errorf("Category %s: primary action must point at the item link, got %s", category, actions[0].URL)
		}
	}
}

func TestFormatContainsTitleAndLink(t *testing.T) {
	item := sampleItem()
	body, actions := Format(item, classify.CategoryExamUpdate)

	if !strings.Contains(body, "SSC CGL 2025 — 17,727 Vacancies") {
		t.Error("Body must contain the literal item title")
	}
	for _, action := range actions {
		if action.URL != item.Link {
			t.Errorf("Action URL %s does not equal item link %s", action.URL, item.Link)
		}
	}
}

func TestFormatEscapesHTML(t *testing.T) {
	item := sampleItem()
	item.Title = `Jobs <script>alert("x")</script> & more`
	item.Summary = "5 > 3 & 2 < 4"

	body, _ := Format(item, classify.CategoryGeneral)

	if strings.Contains(body, "<script>") {
		t.Error("Interpolated title must be HTML-escaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("Expected escaped title in body")
	}
	if !strings.Contains(body, "5 &gt; 3 &amp; 2 &lt; 4") {
		t.Errorf("Expected escaped summary in body, got: %s", body)
	}
}

func TestFormatSentinelsForMissingFields(t *testing.T) {
	// Unenriched item: all detail fields empty
	body, _ := Format(sampleItem(), classify.CategoryExamUpdate)

	if !strings.Contains(body, "Not Available") {
		t.Error("Missing optional fields must render a sentinel, never blank")
	}
	if !strings.Contains(body, "Not Announced Yet") {
		t.Error("Missing exam date must render its sentinel")
	}
	if strings.Contains(body, "<b>Eligibility Criteria:</b>\n\n") {
		t.Error("No field may render blank")
	}
}

func TestFormatEnrichedFields(t *testing.T) {
	item := sampleItem()
	item.Enriched = true
	item.Details = feed.Details{
		ExamDate:  "14 Sep 2025",
		Authority: "SSC",
		Seats:     "17727",
		Fee:       "Rs 100 (General)",
	}

	body, _ := Format(item, classify.CategoryExamUpdate)

	if !strings.Contains(body, "14 Sep 2025") {
		t.Error("Expected enriched exam date in body")
	}
	if !strings.Contains(body, "17727") {
		t.Error("Expected enriched seats in body")
	}
}

func TestFormatDateFallback(t *testing.T) {
	item := sampleItem()
	item.PublishedAt = nil

	body, _ := Format(item, classify.CategoryGeneral)

	// Falls back to today's date rather than rendering blank
	if !strings.Contains(body, time.Now().Format("02 Jan 2006")) {
		t.Error("Expected current date when item has no timestamp")
	}
}
