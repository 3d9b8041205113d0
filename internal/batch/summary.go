package batch

import (
	"fmt"
	"io"
	"time"

	"txtcli/pkg/contracts/domain"
)

// Summary describes a finished (or aborted) run
type Summary struct {
	Job       string
	Files     int
	Processed int
	Skips     []domain.Skip
	Elapsed   time.Duration
	// Output is the results file path, empty when nothing was written
	Output string
}

// LineSkips returns the skipped lines in the order they were found
func (s *Summary) LineSkips() []domain.Skip {
	var out []domain.Skip
	for _, skip := range s.Skips {
		if skip.LineNumber > 0 {
			out = append(out, skip)
		}
	}
	return out
}

// FileSkips returns the files that produced no result
func (s *Summary) FileSkips() []domain.Skip {
	var out []domain.Skip
	for _, skip := range s.Skips {
		if skip.LineNumber == 0 {
			out = append(out, skip)
		}
	}
	return out
}

// WriteDiagnostics prints the skipped lines and files of the run
func WriteDiagnostics(w io.Writer, s *Summary) error {
	if lines := s.LineSkips(); len(lines) > 0 {
		if _, err := fmt.Fprintln(w, "\nEncountered invalid lines:"); err != nil {
			return err
		}
		for _, skip := range lines {
			if _, err := fmt.Fprintln(w, skip.String()); err != nil {
				return err
			}
		}
	}

	if skipped := s.FileSkips(); len(skipped) > 0 {
		if _, err := fmt.Fprintln(w, "\nSkipped files:"); err != nil {
			return err
		}
		for _, skip := range skipped {
			if _, err := fmt.Fprintln(w, skip.String()); err != nil {
				return err
			}
		}
	}
	return nil
}
