package store

import (
	"testing"

	"github.com/zyho/litnotes/internal/paper"
)

func testPaper(topic paper.Topic, title string, year int) paper.Paper {
	return paper.Paper{
		Topic:    topic,
		Title:    title,
		Authors:  []string{"Alice Smith"},
		Year:     year,
		Journal:  "Nature",
		Abstract: []string{"A paragraph."},
	}
}

func TestNewHasAllTopics(t *testing.T) {
	s := New()
	if s.Len() != 0 {
		t.Errorf("New().Len() = %d, want 0", s.Len())
	}
	counts := s.CountByTopic()
	if len(counts) != len(paper.Topics) {
		t.Errorf("CountByTopic() has %d topics, want %d", len(counts), len(paper.Topics))
	}
	for topic, n := range counts {
		if n != 0 {
			t.Errorf("topic %s count = %d, want 0", topic, n)
		}
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := New()
	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		if err := s.Add(testPaper(paper.Disclosure, title, 2020)); err != nil {
			t.Fatalf("Add(%q): %v", title, err)
		}
	}

	got := s.Papers(paper.Disclosure)
	if len(got) != len(titles) {
		t.Fatalf("Papers() returned %d entries, want %d", len(got), len(titles))
	}
	for i, p := range got {
		if p.Title != titles[i] {
			t.Errorf("entry %d title = %q, want %q", i, p.Title, titles[i])
		}
	}
}

func TestAddAllowsDuplicates(t *testing.T) {
	s := New()
	p := testPaper(paper.RussianBanking, "Same Paper", 2019)
	if err := s.Add(p); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(p); err != nil {
		t.Fatalf("adding a duplicate entry: %v", err)
	}
	if got := len(s.Papers(paper.RussianBanking)); got != 2 {
		t.Errorf("got %d entries, want 2", got)
	}
}

func TestAddRejectsInvalid(t *testing.T) {
	s := New()
	p := testPaper(paper.Disclosure, "No Authors", 2020)
	p.Authors = nil
	if err := s.Add(p); err == nil {
		t.Error("Add() with empty authors = nil, want error")
	}
}

func TestAll(t *testing.T) {
	s := New()
	// Insert out of topic order; All must come back in enumeration order.
	s.Add(testPaper(paper.BankingRegulation, "Reg", 2021))
	s.Add(testPaper(paper.TransitionEconomies, "Trans", 2020))
	s.Add(testPaper(paper.Disclosure, "Disc", 2019))

	got := s.All()
	wantTitles := []string{"Trans", "Disc", "Reg"}
	if len(got) != len(wantTitles) {
		t.Fatalf("All() returned %d entries, want %d", len(got), len(wantTitles))
	}
	for i, p := range got {
		if p.Title != wantTitles[i] {
			t.Errorf("All()[%d].Title = %q, want %q", i, p.Title, wantTitles[i])
		}
	}
}

func TestReplaceAbstract(t *testing.T) {
	s := New()
	original := paper.Paper{
		Topic:    paper.MarketDiscipline,
		Title:    "Depositor Behavior",
		Authors:  []string{"Alice Smith", "Bob Jones"},
		Year:     2022,
		Journal:  "Science",
		Abstract: []string{"Old paragraph one.", "Old paragraph two."},
	}
	if err := s.Add(testPaper(paper.MarketDiscipline, "Before", 2020)); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(original); err != nil {
		t.Fatal(err)
	}

	loc := Locator{Topic: paper.MarketDiscipline, Index: 1}
	if err := s.ReplaceAbstract(loc, []string{"New single paragraph."}); err != nil {
		t.Fatalf("ReplaceAbstract: %v", err)
	}

	got, ok := s.At(loc)
	if !ok {
		t.Fatal("entry vanished after ReplaceAbstract")
	}
	if got.Title != original.Title || got.Year != original.Year ||
		got.Journal != original.Journal || got.Topic != original.Topic {
		t.Errorf("non-abstract fields changed: %+v", got)
	}
	if len(got.Authors) != 2 || got.Authors[0] != "Alice Smith" {
		t.Errorf("authors changed: %v", got.Authors)
	}
	if len(got.Abstract) != 1 || got.Abstract[0] != "New single paragraph." {
		t.Errorf("abstract = %v, want one new paragraph", got.Abstract)
	}

	// Position in the topic sequence is unchanged.
	entries := s.Papers(paper.MarketDiscipline)
	if entries[0].Title != "Before" || entries[1].Title != "Depositor Behavior" {
		t.Errorf("entry order changed: %q, %q", entries[0].Title, entries[1].Title)
	}
}

func TestReplaceAbstractErrors(t *testing.T) {
	s := New()
	s.Add(testPaper(paper.Disclosure, "Only", 2020))

	tests := []struct {
		name       string
		loc        Locator
		paragraphs []string
	}{
		{
			name:       "index out of range",
			loc:        Locator{Topic: paper.Disclosure, Index: 1},
			paragraphs: []string{"ok"},
		},
		{
			name:       "negative index",
			loc:        Locator{Topic: paper.Disclosure, Index: -1},
			paragraphs: []string{"ok"},
		},
		{
			name:       "empty abstract rejected",
			loc:        Locator{Topic: paper.Disclosure, Index: 0},
			paragraphs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.ReplaceAbstract(tt.loc, tt.paragraphs); err == nil {
				t.Error("ReplaceAbstract() = nil, want error")
			}
		})
	}

	// Failed replacement leaves the entry untouched.
	got, _ := s.At(Locator{Topic: paper.Disclosure, Index: 0})
	if len(got.Abstract) != 1 || got.Abstract[0] != "A paragraph." {
		t.Errorf("abstract changed after failed replacement: %v", got.Abstract)
	}
}
