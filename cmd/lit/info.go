package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zyho/litnotes/internal/paper"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show shelf paths and entry counts",
	RunE:  runInfo,
}

// InfoResponse summarizes the shelf.
type InfoResponse struct {
	Root       string         `json:"root"`
	StorePath  string         `json:"store_path"`
	Document   string         `json:"document"`
	Entries    int            `json:"entries"`
	ByTopic    map[string]int `json:"by_topic"`
	IndexedAt  time.Time      `json:"indexed_at,omitempty"`
	IndexFresh bool           `json:"index_fresh"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	root, cfg, st := loadShelf()

	byTopic := make(map[string]int, len(paper.Topics))
	for topic, n := range st.CountByTopic() {
		byTopic[string(topic)] = n
	}

	db := openFreshIndex(root, cfg, st)
	defer db.Close()

	indexedAt, err := db.LastRebuild()
	if err != nil {
		exitWithError(ExitError, "reading index metadata: %v", err)
	}
	stale, err := db.Stale(cfg.StorePath(root))
	if err != nil {
		exitWithError(ExitError, "checking index: %v", err)
	}

	resp := InfoResponse{
		Root:       root,
		StorePath:  cfg.StorePath(root),
		Document:   cfg.RenderPath(root),
		Entries:    st.Len(),
		ByTopic:    byTopic,
		IndexedAt:  indexedAt,
		IndexFresh: !stale,
	}

	if humanOutput {
		fmt.Printf("Shelf:    %s\n", resp.Root)
		fmt.Printf("Store:    %s\n", resp.StorePath)
		fmt.Printf("Document: %s\n", resp.Document)
		fmt.Printf("Entries:  %d\n", resp.Entries)
		for _, topic := range paper.Topics {
			fmt.Printf("  %-22s %d\n", topic, byTopic[string(topic)])
		}
		return nil
	}
	return outputJSON(resp)
}
