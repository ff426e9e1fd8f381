package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zyho/litnotes/internal/paper"
)

var (
	addTopic        string
	addTitle        string
	addAuthors      string
	addYear         string
	addJournal      string
	addAbstract     string
	addAbstractFile string
	addPDF          string
)

func init() {
	addCmd.Flags().StringVar(&addTopic, "topic", "", "Research topic (number or name, see 'lit topics')")
	addCmd.Flags().StringVar(&addTitle, "title", "", "Paper title")
	addCmd.Flags().StringVar(&addAuthors, "authors", "", "Author names, separated by semicolons")
	addCmd.Flags().StringVar(&addYear, "year", "", "Publication year")
	addCmd.Flags().StringVar(&addJournal, "journal", "", "Journal name")
	addCmd.Flags().StringVar(&addAbstract, "abstract", "", "Abstract text (blank lines separate paragraphs)")
	addCmd.Flags().StringVar(&addAbstractFile, "abstract-file", "", "Read the abstract from a text file")
	addCmd.Flags().StringVar(&addPDF, "pdf", "", "Extract the abstract from a PDF file")
	addCmd.MarkFlagRequired("topic")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("authors")
	addCmd.MarkFlagRequired("year")
	addCmd.MarkFlagRequired("journal")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new paper entry",
	Long: `Add a new paper entry under a research topic, then rewrite the
store and regenerate the literature review document.

Without --abstract, --abstract-file or --pdf, the abstract is read
interactively from stdin: blank lines separate paragraphs, a line
containing only END finishes.

Examples:
  lit add --topic 3 --title "Transparency and Bank Runs" \
    --authors "Alice Smith; Bob Jones" --year 2020 --journal Nature \
    --abstract "One paragraph abstract."
  lit add --topic "Russian Banking" --title ... --pdf paper.pdf`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	root, cfg, st := loadShelf()

	topic, err := paper.ParseTopic(addTopic)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	year, err := strconv.Atoi(strings.TrimSpace(addYear))
	if err != nil {
		exitWithError(ExitDataError, "invalid year %q: must be an integer", addYear)
	}

	authors := paper.ParseAuthors(addAuthors)
	if len(authors) == 0 {
		exitWithError(ExitDataError, "author list is empty")
	}

	p := paper.Paper{
		Topic:    topic,
		Title:    strings.TrimSpace(addTitle),
		Authors:  authors,
		Year:     year,
		Journal:  strings.TrimSpace(addJournal),
		Abstract: resolveAbstract(addAbstract, addAbstractFile, addPDF),
	}

	if err := st.Add(p); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	docPath := commit(root, cfg, st)

	if humanOutput {
		fmt.Printf("Entry added under %s; document updated: %s\n", topic, docPath)
	} else {
		outputJSON(StatusResponse{Status: "added", Path: cfg.StorePath(root), Document: docPath})
	}
	return nil
}
