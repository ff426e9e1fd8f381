package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zyho/litnotes/internal/render"
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Regenerate the literature review document",
	Long: `Regenerate the literature review document from the current store.

The document is always derived from the full store, so rendering an
unchanged store reproduces the file byte for byte. add and revise
already render; this command exists to rebuild the document after the
store file was edited or merged by hand.`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	root, cfg, st := loadShelf()

	doc, err := render.Render(st)
	if err != nil {
		exitWithError(ExitDataError, "rendering document: %v", err)
	}

	docPath := cfg.RenderPath(root)
	if err := doc.Write(docPath); err != nil {
		exitWithError(ExitError, "writing document: %v", err)
	}

	if humanOutput {
		fmt.Printf("Document updated: %s\n", docPath)
	} else {
		outputJSON(StatusResponse{Status: "rendered", Document: docPath})
	}
	return nil
}
