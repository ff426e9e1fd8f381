package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zyho/litnotes/internal/index"
	"github.com/zyho/litnotes/internal/paper"
)

var (
	listTopic string
	listYear  int
	listSince int
)

func init() {
	listCmd.Flags().StringVar(&listTopic, "topic", "", "Only entries under this topic (number or name)")
	listCmd.Flags().IntVar(&listYear, "year", 0, "Only entries from this exact year")
	listCmd.Flags().IntVar(&listSince, "since", 0, "Only entries from this year onward")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, optionally filtered",
	Long: `List entries via the derived query index, optionally filtered by
topic and year. The index is rebuilt automatically when the store
has changed.

Examples:
  lit list
  lit list --topic Disclosure --since 2019`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	root, cfg, st := loadShelf()

	var filter index.Filter
	if listTopic != "" {
		topic, err := paper.ParseTopic(listTopic)
		if err != nil {
			exitWithError(ExitDataError, "%v", err)
		}
		filter.Topic = topic
	}
	filter.Year = listYear
	filter.Since = listSince

	db := openFreshIndex(root, cfg, st)
	defer db.Close()

	rows, err := db.List(filter)
	if err != nil {
		exitWithError(ExitError, "listing entries: %v", err)
	}

	if humanOutput {
		if len(rows) == 0 {
			fmt.Println("No entries.")
			return nil
		}
		for _, r := range rows {
			fmt.Printf("%-22s %d  %s: %s\n", r.Topic, r.Year, r.Authors, r.Title)
		}
		return nil
	}

	if rows == nil {
		rows = []index.Row{}
	}
	return outputJSON(rows)
}
