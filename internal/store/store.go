// Package store holds the in-memory paper collection and its JSONL
// persistence. The JSONL file is the source of truth; the collection
// is loaded wholesale at startup and written wholesale after every
// mutation.
package store

import (
	"fmt"

	"github.com/zyho/litnotes/internal/paper"
)

// Store is the full collection of papers, keyed by topic. Entries
// within a topic keep their insertion order.
type Store struct {
	byTopic map[paper.Topic][]paper.Paper
}

// New returns an empty store with every topic present.
func New() *Store {
	byTopic := make(map[paper.Topic][]paper.Paper, len(paper.Topics))
	for _, t := range paper.Topics {
		byTopic[t] = nil
	}
	return &Store{byTopic: byTopic}
}

// Add appends p to its topic's sequence. No deduplication is
// performed; two entries may share title, authors and year.
func (s *Store) Add(p paper.Paper) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid paper: %w", err)
	}
	s.byTopic[p.Topic] = append(s.byTopic[p.Topic], p)
	return nil
}

// Papers returns the entries filed under t, in insertion order. The
// returned slice is a copy.
func (s *Store) Papers(t paper.Topic) []paper.Paper {
	entries := s.byTopic[t]
	if len(entries) == 0 {
		return nil
	}
	out := make([]paper.Paper, len(entries))
	copy(out, entries)
	return out
}

// All returns every entry, topics in enumeration order, insertion
// order within each topic.
func (s *Store) All() []paper.Paper {
	var out []paper.Paper
	for _, t := range paper.Topics {
		out = append(out, s.byTopic[t]...)
	}
	return out
}

// Len returns the total number of entries.
func (s *Store) Len() int {
	n := 0
	for _, entries := range s.byTopic {
		n += len(entries)
	}
	return n
}

// CountByTopic returns the number of entries per topic.
func (s *Store) CountByTopic() map[paper.Topic]int {
	counts := make(map[paper.Topic]int, len(paper.Topics))
	for _, t := range paper.Topics {
		counts[t] = len(s.byTopic[t])
	}
	return counts
}

// Locator identifies one entry by its topic and position within that
// topic's sequence.
type Locator struct {
	Topic paper.Topic `json:"topic"`
	Index int         `json:"index"`
}

// At returns the entry at loc.
func (s *Store) At(loc Locator) (paper.Paper, bool) {
	entries := s.byTopic[loc.Topic]
	if loc.Index < 0 || loc.Index >= len(entries) {
		return paper.Paper{}, false
	}
	return entries[loc.Index], true
}

// ReplaceAbstract swaps the abstract of the entry at loc for
// paragraphs, leaving every other field and the entry's position
// unchanged.
func (s *Store) ReplaceAbstract(loc Locator, paragraphs []string) error {
	entries := s.byTopic[loc.Topic]
	if loc.Index < 0 || loc.Index >= len(entries) {
		return fmt.Errorf("no entry at %s[%d]", loc.Topic, loc.Index)
	}

	updated := entries[loc.Index]
	updated.Abstract = paragraphs
	if err := updated.Validate(); err != nil {
		return fmt.Errorf("invalid replacement abstract: %w", err)
	}

	entries[loc.Index] = updated
	return nil
}

// Equal reports whether two stores hold identical entries in
// identical order.
func (s *Store) Equal(other *Store) bool {
	for _, t := range paper.Topics {
		a, b := s.byTopic[t], other.byTopic[t]
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !papersEqual(a[i], b[i]) {
				return false
			}
		}
	}
	return true
}

func papersEqual(a, b paper.Paper) bool {
	if a.Topic != b.Topic || a.Title != b.Title || a.Year != b.Year || a.Journal != b.Journal {
		return false
	}
	if len(a.Authors) != len(b.Authors) || len(a.Abstract) != len(b.Abstract) {
		return false
	}
	for i := range a.Authors {
		if a.Authors[i] != b.Authors[i] {
			return false
		}
	}
	for i := range a.Abstract {
		if a.Abstract[i] != b.Abstract[i] {
			return false
		}
	}
	return true
}
