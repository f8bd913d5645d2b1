package feed

import (
	"testing"
)

func TestFingerprintDeterministic(t *testing.T) {
	a := Fingerprint("https://example.com/job", "SSC CGL 2025")
	b := Fingerprint("https://example.com/job", "SSC CGL 2025")

	if a != b {
		t.Errorf("Same (link, title) must yield the same fingerprint: %s != %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(a))
	}
}

func TestFingerprintDiffers(t *testing.T) {
	base := Fingerprint("https://example.com/job", "SSC CGL 2025")

	if base == Fingerprint("https://example.com/other", "SSC CGL 2025") {
		t.Error("Different link must yield a different fingerprint")
	}
	if base == Fingerprint("https://example.com/job", "UPSC CSE 2025") {
		t.Error("Different title must yield a different fingerprint")
	}
}
