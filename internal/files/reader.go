package files

import (
	stderrors "errors"
	"os"
	"strings"
	"unicode/utf8"

	"txtcli/internal/errors"
)

// ErrInvalidEncoding is the cause reported for input that is not UTF-8
var ErrInvalidEncoding = stderrors.New("file is not valid UTF-8")

// ReadLines loads a whole text file and splits it into lines. Line
// terminators are removed; a final terminator does not produce an extra
// empty line. Any failure is a FILE_UNREADABLE error.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewFileUnreadableError(path, err)
	}
	if !utf8.Valid(data) {
		return nil, errors.NewFileUnreadableError(path, ErrInvalidEncoding)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text on "\n", dropping a trailing "\r" from each line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
