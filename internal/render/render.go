// Package render projects the store into the literature review
// document. Rendering always regenerates the whole document from the
// whole store, so the output is a pure function of store contents.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zyho/litnotes/internal/paper"
	"github.com/zyho/litnotes/internal/store"
)

// DocumentTitle heads the rendered Markdown file.
const DocumentTitle = "Literature Review"

// Document is the rendered view of a store.
type Document struct {
	Sections []Section
}

// Section groups the numbered entries of one topic.
type Section struct {
	Topic   paper.Topic
	Entries []Entry
}

// Entry is one numbered paper within a section. Numbering restarts
// at 1 for every topic.
type Entry struct {
	Number int
	Paper  paper.Paper
}

// Render builds the document model: topics in enumeration order
// (empty topics are skipped), entries sorted by year ascending with
// ties keeping store insertion order, numbered from 1 per topic.
// An entry violating the paper invariants fails the render outright.
func Render(s *store.Store) (*Document, error) {
	doc := &Document{}
	for _, t := range paper.Topics {
		papers := s.Papers(t)
		if len(papers) == 0 {
			continue
		}

		for _, p := range papers {
			if err := p.Validate(); err != nil {
				return nil, fmt.Errorf("entry %q under %s: %w", p.Title, t, err)
			}
		}

		// Stable: equal years keep insertion order, so re-rendering an
		// unchanged store is byte-identical.
		sort.SliceStable(papers, func(i, j int) bool {
			return papers[i].Year < papers[j].Year
		})

		section := Section{Topic: t}
		for i, p := range papers {
			section.Entries = append(section.Entries, Entry{Number: i + 1, Paper: p})
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc, nil
}

// Markdown serializes the document. The layout per entry follows the
// review format: numbered line with authors, year, journal and title,
// then one indented blockquote per abstract paragraph.
func (d *Document) Markdown() string {
	var b strings.Builder

	b.WriteString("# " + DocumentTitle + "\n")

	for _, section := range d.Sections {
		b.WriteString("\n")
		fmt.Fprintf(&b, "## Topic %d: %s\n", section.Topic.Number(), section.Topic)

		for _, e := range section.Entries {
			b.WriteString("\n")
			fmt.Fprintf(&b, "%d. %s (%d) %s: %s\n",
				e.Number,
				paper.FormatAuthors(e.Paper.Authors),
				e.Paper.Year,
				e.Paper.Journal,
				e.Paper.Title)
			for _, para := range e.Paper.Abstract {
				b.WriteString("\n")
				fmt.Fprintf(&b, "   > %s\n", para)
			}
		}
	}

	return b.String()
}

// Write renders the document to path, fully overwriting any previous
// version. The same temp-file-and-rename strategy as the store keeps
// readers from observing a half-written document.
func (d *Document) Write(path string) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.md")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.WriteString(d.Markdown()); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing document: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing document: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing document: %w", err)
	}

	success = true
	return nil
}
