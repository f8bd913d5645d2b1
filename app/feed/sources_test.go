package feed

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSourcesOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yml")
	content := `- url: https://example.com/feed.xml
  name: Example Jobs
- url: https://other.example.com/rss
  name: Other Jobs
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write sources file: %v", err)
	}

	sources, err := LoadSources(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(sources) != 2 {
		t.Fatalf("Expected 2 sources, got %d", len(sources))
	}
	if sources[0].URL != "https://example.com/feed.xml" || sources[0].Name != "Example Jobs" {
		t.Errorf("Unexpected first source: %+v", sources[0])
	}
}

func TestLoadSourcesMissingFile(t *testing.T) {
	if _, err := LoadSources("/nonexistent/sources.yml"); err == nil {
		t.Error("Expected error for missing sources file")
	}
}

func TestLoadSourcesInvalidEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yml")
	if err := os.WriteFile(path, []byte("- url: https://example.com\n"), 0o644); err != nil {
		t.Fatalf("Failed to write sources file: %v", err)
	}

	if _, err := LoadSources(path); err == nil {
		t.Error("Expected error for entry without name")
	}
}
