package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zyho/litnotes/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new litnotes shelf",
	Long: `Initialize a new litnotes shelf in the current directory.

Creates:
  .litnotes/
  ├── papers.jsonl    # Empty store
  ├── config.yml      # Default config
  └── cache/          # Derived index (safe to delete)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getStartingDirectory()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	if config.IsShelf(root) {
		exitWithError(ExitError, "directory already contains a litnotes shelf")
	}

	if err := os.MkdirAll(config.ShelfPath(root), 0755); err != nil {
		exitWithError(ExitError, "creating %s directory: %v", config.ShelfDir, err)
	}
	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	cfg := &config.Config{}
	storeFile, err := os.Create(cfg.StorePath(root))
	if err != nil {
		exitWithError(ExitError, "creating store file: %v", err)
	}
	storeFile.Close()

	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "writing config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized empty litnotes shelf in %s\n", config.ShelfPath(root))
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: config.ShelfPath(root)})
	}
	return nil
}
