package match

import (
	"errors"
	"testing"

	"github.com/zyho/litnotes/internal/paper"
	"github.com/zyho/litnotes/internal/store"
)

func buildStore(t *testing.T, papers ...paper.Paper) *store.Store {
	t.Helper()
	s := store.New()
	for _, p := range papers {
		if err := s.Add(p); err != nil {
			t.Fatalf("Add(%q): %v", p.Title, err)
		}
	}
	return s
}

func entry(topic paper.Topic, title string, authors []string, year int) paper.Paper {
	return paper.Paper{
		Topic:    topic,
		Title:    title,
		Authors:  authors,
		Year:     year,
		Journal:  "Nature",
		Abstract: []string{"A paragraph."},
	}
}

func TestFindStates(t *testing.T) {
	s := buildStore(t,
		entry(paper.Disclosure, "Smith Solo", []string{"Alice Smith"}, 2020),
		entry(paper.Disclosure, "Smith And Jones", []string{"Alice Smith", "Bob Jones"}, 2020),
		entry(paper.RussianBanking, "Wrong Year", []string{"Alice Smith"}, 2019),
		entry(paper.BankingRegulation, "Unrelated", []string{"Carol White"}, 2020),
	)

	tests := []struct {
		name       string
		criteria   []string
		year       int
		wantState  State
		wantTitles []string
	}{
		{
			name:       "substring matches every Smith in 2020",
			criteria:   []string{"Smith"},
			year:       2020,
			wantState:  MultipleMatches,
			wantTitles: []string{"Smith Solo", "Smith And Jones"},
		},
		{
			name:       "conjunctive criteria narrow to one",
			criteria:   []string{"Smith", "Jones"},
			year:       2020,
			wantState:  SingleMatch,
			wantTitles: []string{"Smith And Jones"},
		},
		{
			name:      "year mismatch excludes entry",
			criteria:  []string{"Smith"},
			year:      2021,
			wantState: NoMatch,
		},
		{
			name:       "case insensitive",
			criteria:   []string{"smith", "JONES"},
			year:       2020,
			wantState:  SingleMatch,
			wantTitles: []string{"Smith And Jones"},
		},
		{
			name:       "partial name substring",
			criteria:   []string{"Smi"},
			year:       2019,
			wantState:  SingleMatch,
			wantTitles: []string{"Wrong Year"},
		},
		{
			name:      "one unmatched criterion fails the whole set",
			criteria:  []string{"Smith", "White"},
			year:      2020,
			wantState: NoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find(s, tt.criteria, tt.year)
			if got.State() != tt.wantState {
				t.Fatalf("State() = %v, want %v (candidates: %d)", got.State(), tt.wantState, len(got.Candidates))
			}
			if len(got.Candidates) != len(tt.wantTitles) {
				t.Fatalf("got %d candidates, want %d", len(got.Candidates), len(tt.wantTitles))
			}
			for i, c := range got.Candidates {
				if c.Paper.Title != tt.wantTitles[i] {
					t.Errorf("candidate %d = %q, want %q", i, c.Paper.Title, tt.wantTitles[i])
				}
			}
		})
	}
}

func TestFindScanOrder(t *testing.T) {
	// Same author and year across topics: candidates must come back in
	// topic enumeration order, then insertion order.
	s := buildStore(t,
		entry(paper.BankingRegulation, "In Regulation", []string{"Alice Smith"}, 2020),
		entry(paper.TransitionEconomies, "In Transition First", []string{"Alice Smith"}, 2020),
		entry(paper.TransitionEconomies, "In Transition Second", []string{"Alice Smith"}, 2020),
	)

	got := Find(s, []string{"Smith"}, 2020)
	want := []string{"In Transition First", "In Transition Second", "In Regulation"}
	if len(got.Candidates) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(got.Candidates), len(want))
	}
	for i, c := range got.Candidates {
		if c.Paper.Title != want[i] {
			t.Errorf("candidate %d = %q, want %q", i, c.Paper.Title, want[i])
		}
	}
}

func TestFindLocatorsResolve(t *testing.T) {
	s := buildStore(t,
		entry(paper.Disclosure, "First", []string{"Alice Smith"}, 2020),
		entry(paper.Disclosure, "Second", []string{"Alice Smith"}, 2020),
	)

	got := Find(s, []string{"Smith"}, 2020)
	for _, c := range got.Candidates {
		p, ok := s.At(c.Locator)
		if !ok {
			t.Fatalf("locator %+v does not resolve", c.Locator)
		}
		if p.Title != c.Paper.Title {
			t.Errorf("locator resolves to %q, candidate says %q", p.Title, c.Paper.Title)
		}
	}
}

func TestFindIsPure(t *testing.T) {
	s := buildStore(t, entry(paper.Disclosure, "Only", []string{"Alice Smith"}, 2020))
	before := s.All()
	Find(s, []string{"Smith"}, 2020)
	after := s.All()
	if len(before) != len(after) || before[0].Title != after[0].Title {
		t.Error("Find mutated the store")
	}
}

func TestSelect(t *testing.T) {
	s := buildStore(t,
		entry(paper.Disclosure, "One", []string{"Alice Smith"}, 2020),
		entry(paper.Disclosure, "Two", []string{"Alice Smith"}, 2020),
	)
	result := Find(s, []string{"Smith"}, 2020)

	c, err := result.Select(2)
	if err != nil {
		t.Fatalf("Select(2): %v", err)
	}
	if c.Paper.Title != "Two" {
		t.Errorf("Select(2) = %q, want %q", c.Paper.Title, "Two")
	}

	for _, n := range []int{0, 3, -1} {
		_, err := result.Select(n)
		if err == nil {
			t.Errorf("Select(%d) = nil, want error", n)
			continue
		}
		var selErr *SelectionError
		if !errors.As(err, &selErr) {
			t.Errorf("Select(%d) error %v is not a SelectionError", n, err)
		}
	}
}
