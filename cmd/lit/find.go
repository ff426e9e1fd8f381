package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zyho/litnotes/internal/match"
	"github.com/zyho/litnotes/internal/paper"
)

var (
	findAuthors string
	findYear    string
)

func init() {
	findCmd.Flags().StringVar(&findAuthors, "authors", "", "Author name(s) to search for, separated by semicolons")
	findCmd.Flags().StringVar(&findYear, "year", "", "Publication year to search for")
	findCmd.MarkFlagRequired("authors")
	findCmd.MarkFlagRequired("year")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Locate entries by author(s) and year",
	Long: `Locate entries by author name(s) and publication year without
changing anything. Every given author must match (case-insensitive
substring) some author of an entry, and the year must be exact.

Examples:
  lit find --authors "Smith" --year 2020
  lit find --authors "Smith; Jones" --year 2020`,
	RunE: runFind,
}

// FindResponse is the JSON result of a find.
type FindResponse struct {
	Matches    int                 `json:"matches"`
	Candidates []CandidateResponse `json:"candidates"`
}

func runFind(cmd *cobra.Command, args []string) error {
	_, _, st := loadShelf()

	criteria := paper.ParseAuthors(findAuthors)
	if len(criteria) == 0 {
		exitWithError(ExitDataError, "author criteria are empty")
	}

	year, err := strconv.Atoi(strings.TrimSpace(findYear))
	if err != nil {
		exitWithError(ExitDataError, "invalid year %q: must be an integer", findYear)
	}

	result := match.Find(st, criteria, year)

	if humanOutput {
		if result.State() == match.NoMatch {
			fmt.Println("No matching paper found.")
			return nil
		}
		for i, c := range result.Candidates {
			fmt.Printf("%d. %s (Topic %d: %s, %d)\n",
				i+1, c.Paper.Title, c.Paper.Topic.Number(), c.Paper.Topic, c.Paper.Year)
		}
		return nil
	}

	return outputJSON(FindResponse{
		Matches:    len(result.Candidates),
		Candidates: candidateResponses(result),
	})
}
