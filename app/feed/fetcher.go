package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/govtjobs-alert/bot/app/database"
)

const (
	// Per-source entry cap keeps downstream enrichment cost bounded
	maxEntriesPerSource = 5

	sourceFetchTimeout  = 20 * time.Second
	articleFetchTimeout = 15 * time.Second
)

// Fetcher pulls the configured feed sources and normalizes new entries into
// Items, skipping fingerprints already recorded in the store.
type Fetcher struct {
	sources      []Source
	posts        database.PostRepository
	httpClient   *http.Client
	gofeedParser *gofeed.Parser
	extractor    *ContentExtractor
	userAgent    string
}

func NewFetcher(sources []Source, posts database.PostRepository, httpClient *http.Client, userAgent string) *Fetcher {
	return &Fetcher{
		sources:      sources,
		posts:        posts,
		httpClient:   httpClient,
		gofeedParser: gofeed.NewParser(),
		extractor:    NewContentExtractor(),
		userAgent:    userAgent,
	}
}

// Run fetches every source in order and returns the new items found. A
// failing source is logged and skipped; Run never fails as a whole.
func (f *Fetcher) Run(ctx context.Context) []Item {
	var newItems []Item
	successCount := 0
	failCount := 0

	for _, source := range f.sources {
		select {
		case <-ctx.Done():
			slog.Warn("Fetch interrupted", "fetched_sources", successCount, "items", len(newItems))
			return newItems
		default:
		}

		items, err := f.fetchSource(ctx, source)
		if err != nil {
			slog.Warn("Source fetch failed", "source", source.Name, "url", source.URL, "error", err)
			failCount++
			continue
		}

		successCount++
		newItems = append(newItems, items...)
		slog.Debug("Source fetched", "source", source.Name, "new", len(items))
	}

	slog.Info("Fetch completed",
		"sources_ok", successCount,
		"sources_failed", failCount,
		"new_items", len(newItems))

	return newItems
}

func (f *Fetcher) fetchSource(ctx context.Context, source Source) ([]Item, error) {
	data, err := f.fetchURL(ctx, source.URL, sourceFetchTimeout)
	if err != nil {
		return nil, err
	}

	parsed, err := f.gofeedParser.ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	if len(parsed.Items) == 0 {
		return nil, fmt.Errorf("feed contains no entries")
	}

	entries := parsed.Items
	if len(entries) > maxEntriesPerSource {
		entries = entries[:maxEntriesPerSource]
	}

	var items []Item
	for _, entry := range entries {
		item := f.normalizeEntry(entry, source)

		posted, err := f.posts.IsPosted(item.Fingerprint)
		if err != nil {
			slog.Warn("Dedup lookup failed, skipping entry", "source", source.Name, "link", item.Link, "error", err)
			continue
		}
		if posted {
			continue
		}

		if item.Summary == "" {
			item.Summary = f.extractArticleSummary(ctx, item.Link)
		}

		items = append(items, item)
	}

	return items, nil
}

func (f *Fetcher) normalizeEntry(entry *gofeed.Item, source Source) Item {
	title := strings.TrimSpace(entry.Title)
	if title == "" {
		title = "No Title"
	}

	link := entry.Link
	if link == "" {
		link = source.URL
	}

	item := Item{
		Fingerprint: Fingerprint(entry.Link, entry.Title),
		Title:       title,
		Link:        link,
		Summary:     CleanSummary(firstNonEmpty(entry.Description, entry.Content)),
		Source:      source.Name,
	}

	// Best-effort timestamp: published first, updated as fallback
	if entry.PublishedParsed != nil {
		item.PublishedAt = entry.PublishedParsed
	} else if entry.UpdatedParsed != nil {
		item.PublishedAt = entry.UpdatedParsed
	}

	return item
}

// extractArticleSummary fetches the linked article page and extracts its
// readable text. Best-effort: any failure yields an empty summary.
func (f *Fetcher) extractArticleSummary(ctx context.Context, link string) string {
	if link == "" {
		return ""
	}

	data, err := f.fetchURL(ctx, link, articleFetchTimeout)
	if err != nil {
		slog.Debug("Article fetch failed", "url", link, "error", err)
		return ""
	}

	content, err := f.extractor.Run(data)
	if err != nil {
		slog.Debug("Article extraction failed", "url", link, "error", err)
		return ""
	}

	return CleanSummary(content)
}

func (f *Fetcher) fetchURL(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

// FetchSample returns the first entry of the first reachable source without
// consulting the dedup store. Used by the test command to produce a live
// sample item.
func (f *Fetcher) FetchSample(ctx context.Context) *Item {
	for _, source := range f.sources {
		data, err := f.fetchURL(ctx, source.URL, sourceFetchTimeout)
		if err != nil {
			continue
		}

		parsed, err := f.gofeedParser.ParseString(string(data))
		if err != nil || len(parsed.Items) == 0 {
			continue
		}

		item := f.normalizeEntry(parsed.Items[0], source)
		return &item
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
