package exporter

import (
	"bufio"
	"io"

	"txtcli/internal/errors"
)

// SectionWriter writes a free-text report made of per-file sections.
// Lines are buffered and optionally echoed to a console writer as they are
// produced. The first write error sticks and is returned by every later
// call.
type SectionWriter struct {
	out     *bufio.Writer
	closer  io.Closer
	console io.Writer
	err     error
}

// NewSectionWriter creates a writer over w. If w is an io.Closer it is
// closed by Close. console may be nil.
func NewSectionWriter(w io.Writer, console io.Writer) *SectionWriter {
	sw := &SectionWriter{out: bufio.NewWriter(w), console: console}
	if c, ok := w.(io.Closer); ok {
		sw.closer = c
	}
	return sw
}

// Header starts a new section: an empty line followed by the title
func (s *SectionWriter) Header(title string) error {
	return s.write("\n" + title + "\n")
}

// Line writes one newline-terminated report line
func (s *SectionWriter) Line(line string) error {
	return s.write(line + "\n")
}

func (s *SectionWriter) write(text string) error {
	if s.err != nil {
		return s.err
	}
	if _, err := s.out.WriteString(text); err != nil {
		s.err = errors.NewOutputError("failed to write report", err)
		return s.err
	}
	if s.console != nil {
		// console echo is best effort
		_, _ = io.WriteString(s.console, text)
	}
	return nil
}

// Flush writes buffered lines to the underlying writer
func (s *SectionWriter) Flush() error {
	if s.err != nil {
		return s.err
	}
	if err := s.out.Flush(); err != nil {
		s.err = errors.NewOutputError("failed to flush report", err)
	}
	return s.err
}

// Close flushes and closes the underlying writer
func (s *SectionWriter) Close() error {
	flushErr := s.Flush()
	if s.closer == nil {
		return flushErr
	}
	closeErr := s.closer.Close()
	s.closer = nil
	if flushErr != nil {
		return flushErr
	}
	if closeErr != nil {
		return errors.NewOutputError("failed to close report", closeErr)
	}
	return nil
}
