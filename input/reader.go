package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// lineReader yields the meaningful lines of a source and remembers the
// 1-indexed number of the last line returned.
type lineReader struct {
	sc   *bufio.Scanner
	name string
	line int
}

func newLineReader(r io.Reader, name string) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r), name: name}
}

// next returns the next line that is neither blank nor a '#' comment.
func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		return text, true
	}

	return "", false
}

// err reports a scanner failure, if any.
func (lr *lineReader) err() error {
	if err := lr.sc.Err(); err != nil {
		return fmt.Errorf("%s: %w", lr.name, err)
	}

	return nil
}

// wrap prefixes err with the source name and current line.
func (lr *lineReader) wrap(err error) error {
	return fmt.Errorf("%s:%d: %w", lr.name, lr.line, err)
}
