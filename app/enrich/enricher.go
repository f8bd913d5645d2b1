package enrich

import (
	"cmp"
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/govtjobs-alert/bot/app/feed"
)

const (
	sentinelNotAvailable = "Not Available"
	sentinelNotAnnounced = "Not Announced Yet"
	sentinelNotReleased  = "Not Released Yet"
	sentinelNotDeclared  = "Not Declared Yet"
)

// Provider is one hosted text-generation endpoint.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Enricher runs the provider chain. Any single provider failure is soft;
// only when every provider fails does the item come back unenriched.
type Enricher struct {
	providers []Provider
	timeout   time.Duration
}

func NewEnricher(timeout time.Duration, providers ...Provider) *Enricher {
	return &Enricher{
		providers: providers,
		timeout:   timeout,
	}
}

// Run enriches the item, trying providers in order. It never fails: on
// total provider failure the original item is returned with Enriched=false.
func (e *Enricher) Run(ctx context.Context, item feed.Item) feed.Item {
	if item.Title == "" || len(e.providers) == 0 {
		item.Enriched = false
		return item
	}

	prompt := BuildPrompt(item.Title, item.Source, item.Summary)

	for _, provider := range e.providers {
		p, err := e.callProvider(ctx, provider, prompt)
		if err != nil {
			slog.Warn("Enrichment provider failed", "provider", provider.Name(), "title", shorten(item.Title), "error", err)
			continue
		}

		slog.Info("Enrichment succeeded", "provider", provider.Name(), "title", shorten(item.Title))
		return merge(item, p)
	}

	slog.Warn("All enrichment providers failed", "title", shorten(item.Title))
	item.Enriched = false
	return item
}

func (e *Enricher) callProvider(ctx context.Context, provider Provider, prompt string) (*payload, error) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	text, err := provider.Generate(callCtx, prompt)
	if err != nil {
		return nil, err
	}

	return ParsePayload(text)
}

// merge applies the parsed payload onto the item under the fixed field
// mapping, substituting sentinels for anything the model omitted.
func merge(item feed.Item, p *payload) feed.Item {
	item.Title = cmp.Or(strings.TrimSpace(p.ExamName), item.Title)

	item.Details = feed.Details{
		ExamDate:        cmp.Or(p.ExamDate, sentinelNotAnnounced),
		FormDates:       "Start: " + cmp.Or(p.FormStartDate, "N/A") + " | Last: " + cmp.Or(p.FormLastDate, "N/A"),
		Authority:       cmp.Or(p.Authority, item.Source),
		Institute:       cmp.Or(p.Institute, item.Source),
		Eligibility:     cmp.Or(p.Eligibility, sentinelNotAvailable),
		Pattern:         cmp.Or(p.Pattern, sentinelNotAvailable),
		Syllabus:        cmp.Or(p.Syllabus, sentinelNotAvailable),
		Strategy:        cmp.Or(p.Strategy, sentinelNotAvailable),
		Insights:        cmp.Or(p.Insights, sentinelNotAvailable),
		Selection:       cmp.Or(p.Selection, sentinelNotAvailable),
		Seats:           cmp.Or(p.Seats, sentinelNotAvailable),
		Salary:          cmp.Or(p.Salary, sentinelNotAvailable),
		WhyExam:         cmp.Or(p.WhyExam, sentinelNotAvailable),
		AdmitCardStatus: cmp.Or(p.AdmitCardStatus, sentinelNotReleased),
		ResultStatus:    cmp.Or(p.ResultStatus, sentinelNotDeclared),
		MinAge:          cmp.Or(p.MinAge, sentinelNotAvailable),
		MaxAge:          cmp.Or(p.MaxAge, sentinelNotAvailable),
		Fee:             cmp.Or(p.Fee, sentinelNotAvailable),
		Qualification:   cmp.Or(p.Qualification, sentinelNotAvailable),
	}
	item.Enriched = true

	return item
}

func shorten(s string) string {
	return feed.Truncate(s, 60)
}
