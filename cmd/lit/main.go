// Package main provides the lit CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zyho/litnotes/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lit",
	Short: "Personal literature-notes manager",
	Long: `lit records bibliographic metadata and multi-paragraph abstracts
for academic papers, files them under a fixed set of research topics,
and regenerates a Markdown literature review on every change.

Data lives in a git-versionable JSONL store under .litnotes/ with an
ephemeral SQLite index for list queries. Commands output JSON by
default for scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// getStartingDirectory returns the directory to start searching for a
// shelf. LITNOTES_HOME (optionally from a .env file) wins over the
// current working directory.
func getStartingDirectory() (string, int) {
	_ = godotenv.Load()
	if root := os.Getenv(config.HomeEnv); root != "" {
		return root, 0
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}
	return cwd, 0
}

// mustFindShelf finds and validates the shelf, exits on error.
// Returns the shelf root path.
func mustFindShelf() string {
	start, exitCode := getStartingDirectory()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	root, err := config.FindShelf(start)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return root
}
