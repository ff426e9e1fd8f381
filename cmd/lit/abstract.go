package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/zyho/litnotes/internal/paper"
	"github.com/zyho/litnotes/internal/pdfextract"
)

// abstractTerminator ends interactive abstract entry.
const abstractTerminator = "END"

// resolveAbstract turns the add/revise abstract flags into parsed
// paragraphs. Precedence: --abstract, --abstract-file, --pdf, then
// interactive stdin entry. Exits on unusable input.
func resolveAbstract(text, file, pdfPath string) []string {
	switch {
	case text != "":
		paragraphs := paper.ParseAbstract(strings.Split(text, "\n"))
		if len(paragraphs) == 0 {
			exitWithError(ExitDataError, "abstract text is empty")
		}
		return paragraphs

	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			exitWithError(ExitError, "reading abstract file: %v", err)
		}
		paragraphs := paper.ParseAbstract(strings.Split(string(data), "\n"))
		if len(paragraphs) == 0 {
			exitWithError(ExitDataError, "abstract file %s contains no text", file)
		}
		return paragraphs

	case pdfPath != "":
		extracted, err := pdfextract.AbstractText(pdfPath)
		if err != nil {
			exitWithError(ExitError, "extracting from PDF: %v", err)
		}
		if extracted == "" {
			fmt.Fprintf(os.Stderr, "no abstract found in %s; enter it manually\n", pdfPath)
			return readAbstractInteractive()
		}
		return []string{extracted}

	default:
		return readAbstractInteractive()
	}
}

// readAbstractInteractive collects multi-line abstract text from
// stdin. Blank lines separate paragraphs; a line containing only the
// terminator ends input. Empty abstracts re-prompt.
func readAbstractInteractive() []string {
	fmt.Println("Enter the abstract below.")
	fmt.Println("Separate paragraphs with a blank line.")
	fmt.Printf("When finished, type '%s' on a new line.\n", abstractTerminator)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		var lines []string
		terminated := false
		for scanner.Scan() {
			line := scanner.Text()
			if strings.EqualFold(strings.TrimSpace(line), abstractTerminator) {
				terminated = true
				break
			}
			lines = append(lines, line)
		}
		if err := scanner.Err(); err != nil {
			exitWithError(ExitError, "reading abstract: %v", err)
		}

		paragraphs := paper.ParseAbstract(lines)
		if len(paragraphs) > 0 {
			return paragraphs
		}
		if !terminated {
			// stdin exhausted with nothing entered
			exitWithError(ExitDataError, "abstract is empty")
		}
		fmt.Println("Abstract cannot be empty. Please try again.")
	}
}
