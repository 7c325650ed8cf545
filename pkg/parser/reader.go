package parser

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when rule file content is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// maxLineSize bounds a single line.
const maxLineSize = 16 * 1024 * 1024

// ReadLines reads r to the end and splits it into numbered lines. A line ends
// at "\n", "\r\n" or a lone "\r" and keeps its terminator; a final line
// without one is kept as is.
func ReadLines(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLinesKeepEnds)

	var lines []Line
	for num := 1; scanner.Scan(); num++ {
		text := scanner.Text()
		if !utf8.ValidString(text) {
			return nil, fmt.Errorf("line %d: %w", num, ErrInvalidUTF8)
		}
		lines = append(lines, Line{Text: text, Num: num})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// scanLinesKeepEnds is a bufio.SplitFunc like bufio.ScanLines that keeps
// the terminator and also ends a line at a lone "\r".
func scanLinesKeepEnds(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i+1], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i+2], nil
			}
			return i + 1, data[:i+1], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		// "\r" at the end of the buffer may be the start of "\r\n"
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ReadFile reads the lines of the file at path.
func ReadFile(ctx context.Context, path string) ([]Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening rule file %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading rule file %s: %w", path, err)
	}
	return lines, nil
}

// ParseFile reads and parses the rule file at path.
func ParseFile(ctx context.Context, path string) (*Result, error) {
	lines, err := ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return Parse(lines), nil
}
