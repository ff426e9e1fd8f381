// Package paper defines the core domain types for literature notes.
package paper

import (
	"fmt"
	"strconv"
	"strings"
)

// Topic is one of the fixed research topics entries are filed under.
type Topic string

const (
	TransitionEconomies Topic = "Transition Economies"
	RussianBanking      Topic = "Russian Banking"
	Disclosure          Topic = "Disclosure"
	MarketDiscipline    Topic = "Market Discipline"
	BankingRegulation   Topic = "Banking Regulation"
)

// Topics lists all topics in presentation order. Store serialization
// and document rendering both iterate in this order.
var Topics = []Topic{
	TransitionEconomies,
	RussianBanking,
	Disclosure,
	MarketDiscipline,
	BankingRegulation,
}

// JournalSuggestions are offered by the UI when entering a journal
// name; free text is also accepted.
var JournalSuggestions = []string{
	"Nature",
	"Science",
	"IEEE Transactions on Pattern Analysis and Machine Intelligence",
	"ACM Computing Surveys",
}

// Valid reports whether t is one of the enumerated topics.
func (t Topic) Valid() bool {
	for _, known := range Topics {
		if t == known {
			return true
		}
	}
	return false
}

// Number returns the 1-based position of t in the topic list, or 0
// for an unknown topic.
func (t Topic) Number() int {
	for i, known := range Topics {
		if t == known {
			return i + 1
		}
	}
	return 0
}

// ParseTopic resolves user input to a Topic. It accepts the 1-based
// topic number ("2") or the topic name (case-insensitive).
func ParseTopic(input string) (Topic, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("topic is required")
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(Topics) {
			return "", fmt.Errorf("topic number %d out of range (1-%d)", n, len(Topics))
		}
		return Topics[n-1], nil
	}

	for _, t := range Topics {
		if strings.EqualFold(input, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown topic %q", input)
}

// Paper is one academic paper record.
type Paper struct {
	Topic    Topic    `json:"topic"`
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Year     int      `json:"year"`
	Journal  string   `json:"journal"`
	Abstract []string `json:"abstract"` // one element per paragraph
}

// Validate checks the record invariants: a known topic, non-empty
// title and journal, at least one author, and at least one non-empty
// abstract paragraph.
func (p Paper) Validate() error {
	if !p.Topic.Valid() {
		return fmt.Errorf("unknown topic %q", p.Topic)
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title is empty")
	}
	if len(p.Authors) == 0 {
		return fmt.Errorf("author list is empty")
	}
	for i, a := range p.Authors {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("author %d is empty", i+1)
		}
	}
	if strings.TrimSpace(p.Journal) == "" {
		return fmt.Errorf("journal is empty")
	}
	if len(p.Abstract) == 0 {
		return fmt.Errorf("abstract is empty")
	}
	for i, para := range p.Abstract {
		if strings.TrimSpace(para) == "" {
			return fmt.Errorf("abstract paragraph %d is empty", i+1)
		}
	}
	return nil
}

// ParseAuthors splits a semicolon-delimited author string into an
// ordered list, trimming whitespace and dropping empty segments.
func ParseAuthors(input string) []string {
	var authors []string
	for _, part := range strings.Split(input, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			authors = append(authors, part)
		}
	}
	return authors
}

// FormatAuthors joins an author list for display.
func FormatAuthors(authors []string) string {
	return strings.Join(authors, "; ")
}

// ParseAbstract converts raw input lines (terminator already
// stripped) into abstract paragraphs. Consecutive non-blank lines are
// joined with a single space, runs of whitespace collapse, and blank
// lines separate paragraphs.
func ParseAbstract(lines []string) []string {
	var paragraphs []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			flush()
			continue
		}
		current = append(current, strings.Join(fields, " "))
	}
	flush()

	return paragraphs
}
