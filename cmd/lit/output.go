package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zyho/litnotes/internal/match"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that change state.
type StatusResponse struct {
	Status   string `json:"status"`
	Path     string `json:"path,omitempty"`
	Document string `json:"document,omitempty"`
}

// CandidateResponse describes one matcher candidate for
// disambiguation: 1-based index, title and topic, in scan order.
type CandidateResponse struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Topic string `json:"topic"`
	Year  int    `json:"year"`
}

func candidateResponses(result match.Result) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(result.Candidates))
	for i, c := range result.Candidates {
		out = append(out, CandidateResponse{
			Index: i + 1,
			Title: c.Paper.Title,
			Topic: string(c.Paper.Topic),
			Year:  c.Paper.Year,
		})
	}
	return out
}

// printCandidates lists candidates for human selection.
func printCandidates(result match.Result) {
	fmt.Println("Multiple matching papers found:")
	for i, c := range result.Candidates {
		fmt.Printf("%d. %s (Topic %d: %s)\n", i+1, c.Paper.Title, c.Paper.Topic.Number(), c.Paper.Topic)
	}
}
