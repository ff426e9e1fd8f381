package pdfextract

import (
	"strings"
	"testing"
)

func TestBestBlockPrefersAbstractMarker(t *testing.T) {
	long := strings.Repeat("This sentence pads the abstract block to a useful length. ", 6)
	text := "A Very Long Paper Title That Exceeds The Header Cutoff\n" +
		"Alice Smith, Bob Jones\n" +
		"\n" +
		"Abstract: " + long + "\n" +
		"\n" +
		strings.Repeat("Introduction body text that is even longer than the abstract itself. ", 10) + "\n"

	got := bestBlock(text)
	if !strings.HasPrefix(got, "This sentence pads") {
		t.Errorf("bestBlock did not strip the marker: %q", got[:40])
	}
	if strings.Contains(got, "Introduction body") {
		t.Error("bestBlock picked the introduction over the marked abstract")
	}
}

func TestBestBlockFallsBackToLongest(t *testing.T) {
	long := strings.Repeat("Unmarked but substantial paragraph content here. ", 8)
	text := "Short header\n\nAnother short line\n\n" + long + "\n"

	got := bestBlock(text)
	if !strings.HasPrefix(got, "Unmarked but substantial") {
		t.Errorf("bestBlock = %q", got)
	}
}

func TestBestBlockNothingSuitable(t *testing.T) {
	if got := bestBlock("Title\n\nAuthors\n\nPage 1\n"); got != "" {
		t.Errorf("bestBlock on short blocks = %q, want empty", got)
	}
}

func TestSplitBlocks(t *testing.T) {
	text := "line one\nline two\n\nsecond   block\n\n\nthird\n"
	got := splitBlocks(text)
	want := []string{"line one line two", "second block", "third"}
	if len(got) != len(want) {
		t.Fatalf("got %d blocks, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("block %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAbstractTextMissingFile(t *testing.T) {
	if _, err := AbstractText("does-not-exist.pdf"); err == nil {
		t.Error("AbstractText on missing file = nil, want error")
	}
}
