// Package pdfextract pulls candidate abstract text out of PDF files
// to prefill new entries. Extraction is best-effort: PDF text layout
// varies too much to promise a clean abstract, so callers treat an
// empty result as "enter it by hand".
package pdfextract

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPages bounds the scan; abstracts sit on the first page or two.
const maxPages = 2

// minBlockLen filters out headers, author lines and page furniture.
const minBlockLen = 200

// AbstractText extracts the most abstract-looking text block from the
// first pages of a PDF: the longest run of text between blank lines,
// preferring a block introduced by an "Abstract" marker. Returns ""
// (no error) when nothing suitable is found.
func AbstractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	var text strings.Builder
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text.WriteString(content)
		text.WriteString("\n")
	}

	return bestBlock(text.String()), nil
}

// bestBlock picks the candidate abstract from raw page text.
func bestBlock(text string) string {
	blocks := splitBlocks(text)

	// A block starting with an abstract marker wins outright.
	for _, block := range blocks {
		lower := strings.ToLower(block)
		if strings.HasPrefix(lower, "abstract") {
			trimmed := strings.TrimSpace(strings.TrimLeft(block[len("abstract"):], ":.-— \t"))
			if len(trimmed) >= minBlockLen {
				return trimmed
			}
		}
	}

	// Otherwise the longest substantial block.
	var best string
	for _, block := range blocks {
		if len(block) >= minBlockLen && len(block) > len(best) {
			best = block
		}
	}
	return best
}

// splitBlocks splits page text on blank lines and normalizes each
// block to single-spaced words.
func splitBlocks(text string) []string {
	var blocks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			flush()
			continue
		}
		current = append(current, strings.Join(fields, " "))
	}
	flush()

	return blocks
}
