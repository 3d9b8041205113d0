package domain

import "fmt"

// Skip records input that was left out of a computation without stopping
// the batch: an unparseable line, an unreadable file or a file with no
// usable values. LineNumber is 1-based and zero for file-level skips.
type Skip struct {
	File       string `json:"file"`
	LineNumber int    `json:"line_number,omitempty"`
	Line       string `json:"line,omitempty"`
	Kind       string `json:"kind"`
	Reason     string `json:"reason"`
}

// String renders the skip the way it is reported on the console
func (s Skip) String() string {
	if s.LineNumber > 0 {
		return fmt.Sprintf("Invalid data in %s. Skipping line %d: %s", s.File, s.LineNumber, s.Line)
	}
	return fmt.Sprintf("Skipping %s: %s", s.File, s.Reason)
}
