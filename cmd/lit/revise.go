package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zyho/litnotes/internal/match"
	"github.com/zyho/litnotes/internal/paper"
)

var (
	reviseAuthors      string
	reviseYear         string
	reviseSelect       int
	reviseAbstract     string
	reviseAbstractFile string
	revisePDF          string
)

func init() {
	reviseCmd.Flags().StringVar(&reviseAuthors, "authors", "", "Author name(s) to search for, separated by semicolons")
	reviseCmd.Flags().StringVar(&reviseYear, "year", "", "Publication year to search for")
	reviseCmd.Flags().IntVar(&reviseSelect, "select", 0, "1-based pick when multiple entries match")
	reviseCmd.Flags().StringVar(&reviseAbstract, "abstract", "", "Replacement abstract text (blank lines separate paragraphs)")
	reviseCmd.Flags().StringVar(&reviseAbstractFile, "abstract-file", "", "Read the replacement abstract from a text file")
	reviseCmd.Flags().StringVar(&revisePDF, "pdf", "", "Extract the replacement abstract from a PDF file")
	reviseCmd.MarkFlagRequired("authors")
	reviseCmd.MarkFlagRequired("year")
	rootCmd.AddCommand(reviseCmd)
}

var reviseCmd = &cobra.Command{
	Use:   "revise",
	Short: "Replace the abstract of an existing entry",
	Long: `Replace the abstract of an existing paper entry.

The entry is located by author name(s) and publication year. Every
given author must match (case-insensitive substring) some author of
the entry. When several entries match, the candidates are listed and
the command must be re-run with --select N.

Examples:
  lit revise --authors "Smith" --year 2020 --abstract "New text."
  lit revise --authors "Smith; Jones" --year 2020 --select 2`,
	RunE: runRevise,
}

// ReviseAmbiguousResponse is returned when disambiguation is needed.
type ReviseAmbiguousResponse struct {
	Error      string              `json:"error"`
	Candidates []CandidateResponse `json:"candidates"`
}

func runRevise(cmd *cobra.Command, args []string) error {
	root, cfg, st := loadShelf()

	criteria := paper.ParseAuthors(reviseAuthors)
	if len(criteria) == 0 {
		exitWithError(ExitDataError, "author criteria are empty")
	}

	year, err := strconv.Atoi(strings.TrimSpace(reviseYear))
	if err != nil {
		exitWithError(ExitDataError, "invalid year %q: must be an integer", reviseYear)
	}

	result := match.Find(st, criteria, year)

	var chosen match.Candidate
	switch result.State() {
	case match.NoMatch:
		exitWithError(ExitDataError, "no matching paper found for the given author(s) and year")

	case match.SingleMatch:
		chosen = result.Candidates[0]

	case match.MultipleMatches:
		if reviseSelect == 0 {
			if humanOutput {
				printCandidates(result)
				fmt.Println("Re-run with --select N to pick one.")
			} else {
				outputJSON(ReviseAmbiguousResponse{
					Error:      "multiple matching papers; re-run with --select N",
					Candidates: candidateResponses(result),
				})
			}
			os.Exit(ExitAmbiguous)
		}
		chosen, err = result.Select(reviseSelect)
		if err != nil {
			if humanOutput {
				printCandidates(result)
			}
			exitWithError(ExitAmbiguous, "%v", err)
		}
	}

	if humanOutput {
		fmt.Println("Current abstract:")
		for _, para := range chosen.Paper.Abstract {
			fmt.Println(para)
		}
		fmt.Println()
	}

	paragraphs := resolveAbstract(reviseAbstract, reviseAbstractFile, revisePDF)
	if err := st.ReplaceAbstract(chosen.Locator, paragraphs); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	docPath := commit(root, cfg, st)

	if humanOutput {
		fmt.Printf("Abstract updated for %q; document updated: %s\n", chosen.Paper.Title, docPath)
	} else {
		outputJSON(StatusResponse{Status: "updated", Path: cfg.StorePath(root), Document: docPath})
	}
	return nil
}
