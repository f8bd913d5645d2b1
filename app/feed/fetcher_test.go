package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// fakePostRepo implements database.PostRepository in memory
type fakePostRepo struct {
	posted map[string]bool
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posted: make(map[string]bool)}
}

func (f *fakePostRepo) IsPosted(fingerprint string) (bool, error) {
	return f.posted[fingerprint], nil
}

func (f *fakePostRepo) MarkPosted(fingerprint, title, url string) error {
	f.posted[fingerprint] = true
	return nil
}

func (f *fakePostRepo) GetPostCount() (int, error) {
	return len(f.posted), nil
}

const testFeed = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Jobs Feed</title>
    <link>https://example.com</link>
    <description>Jobs</description>
    <item>
      <title>SSC CGL 2025 Notification</title>
      <link>https://example.com/ssc-cgl</link>
      <description>&lt;p&gt;17,727 vacancies announced&lt;/p&gt;</description>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>UPSC CSE Admit Card</title>
      <link>https://example.com/upsc-admit</link>
      <description>Hall ticket released</description>
    </item>
  </channel>
</rss>`

func TestFetcherRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testFeed))
	}))
	defer server.Close()

	sources := []Source{{URL: server.URL, Name: "Test Source"}}
	fetcher := NewFetcher(sources, newFakePostRepo(), server.Client(), "test-agent")

	items := fetcher.Run(context.Background())

	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.Title != "SSC CGL 2025 Notification" {
		t.Errorf("Unexpected title: %s", first.Title)
	}
	if first.Link != "https://example.com/ssc-cgl" {
		t.Errorf("Unexpected link: %s", first.Link)
	}
	if first.Summary != "17,727 vacancies announced" {
		t.Errorf("Expected HTML-stripped summary, got: %q", first.Summary)
	}
	if first.Source != "Test Source" {
		t.Errorf("Unexpected source: %s", first.Source)
	}
	if first.PublishedAt == nil {
		t.Error("Expected published timestamp")
	}
	if first.Fingerprint != Fingerprint(first.Link, first.Title) {
		t.Error("Fingerprint must derive from (link, title)")
	}
	if first.Enriched {
		t.Error("Fresh items must not be marked enriched")
	}

	// Second entry has no pubDate and no updated date
	if items[1].PublishedAt != nil {
		t.Error("Expected nil timestamp when feed provides none")
	}
}

func TestFetcherSkipsPostedItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeed))
	}))
	defer server.Close()

	posts := newFakePostRepo()
	posts.MarkPosted(Fingerprint("https://example.com/ssc-cgl", "SSC CGL 2025 Notification"), "", "")

	fetcher := NewFetcher([]Source{{URL: server.URL, Name: "Test Source"}}, posts, server.Client(), "test-agent")

	items := fetcher.Run(context.Background())

	if len(items) != 1 {
		t.Fatalf("Expected 1 item after dedup, got %d", len(items))
	}
	if items[0].Title != "UPSC CSE Admit Card" {
		t.Errorf("Expected only the unposted item, got: %s", items[0].Title)
	}
}

func TestFetcherToleratesFailingSource(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeed))
	}))
	defer good.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	sources := []Source{
		{URL: bad.URL, Name: "Broken Source"},
		{URL: good.URL, Name: "Good Source"},
	}
	fetcher := NewFetcher(sources, newFakePostRepo(), good.Client(), "test-agent")

	items := fetcher.Run(context.Background())

	if len(items) != 2 {
		t.Fatalf("A failing source must not abort the cycle; expected 2 items, got %d", len(items))
	}
}

func TestFetcherRespectsEntryCap(t *testing.T) {
	feed := `<?xml version="1.0"?><rss version="2.0"><channel><title>Big</title><link>https://example.com</link>`
	for i := 0; i < 10; i++ {
		feed += `<item><title>Job ` + string(rune('A'+i)) + `</title><link>https://example.com/` + string(rune('a'+i)) + `</link><description>d</description></item>`
	}
	feed += `</channel></rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feed))
	}))
	defer server.Close()

	fetcher := NewFetcher([]Source{{URL: server.URL, Name: "Big"}}, newFakePostRepo(), server.Client(), "test-agent")

	items := fetcher.Run(context.Background())

	if len(items) != maxEntriesPerSource {
		t.Errorf("Expected %d items (per-source cap), got %d", maxEntriesPerSource, len(items))
	}
}

func TestFetcherCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeed))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := NewFetcher([]Source{{URL: server.URL, Name: "Test Source"}}, newFakePostRepo(), server.Client(), "test-agent")

	done := make(chan []Item, 1)
	go func() { done <- fetcher.Run(ctx) }()

	select {
	case items := <-done:
		if len(items) != 0 {
			t.Errorf("Expected no items from cancelled run, got %d", len(items))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestLoadSourcesDefault(t *testing.T) {
	sources, err := LoadSources("")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(sources) != len(DefaultSources) {
		t.Errorf("Expected %d default sources, got %d", len(DefaultSources), len(sources))
	}
}
