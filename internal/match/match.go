// Package match locates store entries from partial, human-entered
// author and year criteria. Matching is a pure function over a store
// snapshot; disambiguation between multiple candidates is left to the
// caller.
package match

import (
	"fmt"
	"strings"

	"github.com/zyho/litnotes/internal/paper"
	"github.com/zyho/litnotes/internal/store"
)

// State classifies a Find result.
type State int

const (
	NoMatch State = iota
	SingleMatch
	MultipleMatches
)

// Candidate is one entry satisfying the search criteria.
type Candidate struct {
	Locator store.Locator
	Paper   paper.Paper
}

// Result holds the candidates in scan order: topics in enumeration
// order, store insertion order within a topic. This order is also the
// presentation order when the caller must disambiguate.
type Result struct {
	Candidates []Candidate
}

// State returns NoMatch, SingleMatch or MultipleMatches.
func (r Result) State() State {
	switch len(r.Candidates) {
	case 0:
		return NoMatch
	case 1:
		return SingleMatch
	default:
		return MultipleMatches
	}
}

// Find scans every entry in the store. An entry is a candidate when
// its year equals year and every criterion string is a
// case-insensitive substring of at least one of its author names.
// An entry may have authors the criteria never mention.
func Find(s *store.Store, authorCriteria []string, year int) Result {
	var result Result
	for _, t := range paper.Topics {
		for i, p := range s.Papers(t) {
			if p.Year != year {
				continue
			}
			if !allCriteriaMatch(authorCriteria, p.Authors) {
				continue
			}
			result.Candidates = append(result.Candidates, Candidate{
				Locator: store.Locator{Topic: t, Index: i},
				Paper:   p,
			})
		}
	}
	return result
}

// allCriteriaMatch implements the conjunctive rule: each criterion
// must match some author, not necessarily the same one.
func allCriteriaMatch(criteria []string, authors []string) bool {
	for _, c := range criteria {
		if !anyAuthorMatches(c, authors) {
			return false
		}
	}
	return true
}

func anyAuthorMatches(criterion string, authors []string) bool {
	c := strings.ToLower(strings.TrimSpace(criterion))
	for _, a := range authors {
		if strings.Contains(strings.ToLower(a), c) {
			return true
		}
	}
	return false
}

// SelectionError reports a 1-based candidate selection outside the
// valid range. It is a user-input error the caller should re-prompt
// on, not a fault.
type SelectionError struct {
	Given int
	Count int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selection %d out of range (1-%d)", e.Given, e.Count)
}

// Select resolves a 1-based human selection against the candidate
// list.
func (r Result) Select(n int) (Candidate, error) {
	if n < 1 || n > len(r.Candidates) {
		return Candidate{}, &SelectionError{Given: n, Count: len(r.Candidates)}
	}
	return r.Candidates[n-1], nil
}
