package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zyho/litnotes/internal/paper"
)

func init() {
	rootCmd.AddCommand(topicsCmd)
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the research topics",
	Long: `List the fixed research topics with their 1-based numbers.

Both the number and the name are accepted by --topic flags.`,
	RunE: runTopics,
}

// TopicResponse is one topic in topics output.
type TopicResponse struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

func runTopics(cmd *cobra.Command, args []string) error {
	if humanOutput {
		for _, t := range paper.Topics {
			fmt.Printf("%d. %s\n", t.Number(), t)
		}
		return nil
	}

	out := make([]TopicResponse, 0, len(paper.Topics))
	for _, t := range paper.Topics {
		out = append(out, TopicResponse{Number: t.Number(), Name: string(t)})
	}
	return outputJSON(out)
}
