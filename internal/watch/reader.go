package watch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	initialBufSize = 64 * 1024

	// maxLineSize bounds a single line. Longer lines are skipped so one
	// runaway message cannot end the stream.
	maxLineSize = 1024 * 1024
)

// ReadLines streams lines from r until EOF or ctx ends. A read error is
// delivered as the final event.
func ReadLines(ctx context.Context, r io.Reader) <-chan LogEvent {
	out := make(chan LogEvent)
	go func() {
		defer close(out)
		lr := newLineReader(r)
		for {
			line, err := lr.next()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					select {
					case out <- LogEvent{Err: fmt.Errorf("read input: %w", err)}:
					case <-ctx.Done():
					}
				}
				return
			}
			select {
			case out <- LogEvent{Line: line}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// lineReader splits input on newlines, dropping lines over maxLineSize
// instead of failing. Blank lines are kept.
type lineReader struct {
	r   *bufio.Reader
	buf []byte
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{
		r:   bufio.NewReaderSize(r, initialBufSize),
		buf: make([]byte, 0, initialBufSize),
	}
}

// next returns the next line without its terminator, or io.EOF.
func (lr *lineReader) next() (string, error) {
	for {
		line, skipped, err := lr.readLine()
		if err != nil {
			return "", err
		}
		if !skipped {
			return line, nil
		}
	}
}

// readLine accumulates ReadLine chunks until the line ends. An oversized
// line is consumed to its end and reported as skipped.
func (lr *lineReader) readLine() (string, bool, error) {
	lr.buf = lr.buf[:0]
	oversized := false
	for {
		chunk, isPrefix, err := lr.r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(lr.buf) > 0 || oversized) {
				break
			}
			return "", false, err
		}
		if !oversized {
			lr.buf = append(lr.buf, chunk...)
			if len(lr.buf) > maxLineSize {
				oversized = true
				lr.buf = lr.buf[:0]
			}
		}
		if !isPrefix {
			break
		}
	}
	if oversized {
		return "", true, nil
	}
	return strings.TrimSuffix(string(lr.buf), "\r"), false, nil
}
