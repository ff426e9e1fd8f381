package store

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zyho/litnotes/internal/paper"
)

// MaxLineCapacity is the maximum buffer size for reading JSONL lines
// (1MB per line). Long abstracts fit comfortably under this.
const MaxLineCapacity = 1024 * 1024

// MalformedRecordError reports a stored record that violates the
// paper invariants. It indicates corrupted durable state and is fatal
// to the load; records are never silently dropped or repaired.
type MalformedRecordError struct {
	Line int
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: %v", e.Line, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// Load reads the store from a JSONL file. A missing file is valid
// initial state and yields an empty store, not an error.
func Load(path string) (*Store, error) {
	s := New()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("opening store file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	buf := make([]byte, MaxLineCapacity)
	scanner.Buffer(buf, MaxLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var p paper.Paper
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, &MalformedRecordError{Line: lineNum, Err: err}
		}
		if err := p.Validate(); err != nil {
			return nil, &MalformedRecordError{Line: lineNum, Err: err}
		}
		s.byTopic[p.Topic] = append(s.byTopic[p.Topic], p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading store file: %w", err)
	}

	return s, nil
}

// Save writes the whole store to path atomically via a temp file and
// rename. Records are written in topic enumeration order, then
// insertion order, so Load(Save(s)) reproduces s exactly.
func (s *Store) Save(path string) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.jsonl")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	for _, t := range paper.Topics {
		for i, p := range s.byTopic[t] {
			data, err := json.Marshal(p)
			if err != nil {
				tmpFile.Close()
				return fmt.Errorf("encoding %s entry %d: %w", t, i+1, err)
			}
			if _, err := tmpFile.Write(data); err != nil {
				tmpFile.Close()
				return fmt.Errorf("writing entry: %w", err)
			}
			if _, err := tmpFile.WriteString("\n"); err != nil {
				tmpFile.Close()
				return fmt.Errorf("writing newline: %w", err)
			}
		}
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}

// ComputeHash returns the SHA256 hash of the store file's contents.
// A missing file hashes as empty, matching the empty store.
func ComputeHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			h := sha256.Sum256([]byte{})
			return hex.EncodeToString(h[:]), nil
		}
		return "", fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
