// Package sse decodes the line-oriented event-stream framing used by the
// agent server into event payloads.
//
// Each payload travels on one line prefixed with "data: ". Lines without the
// prefix are ignored. Chunk boundaries of the underlying reader do not need
// to align with line boundaries; a line is only yielded once its terminating
// newline has arrived, so an unterminated fragment at end of input is
// dropped.
package sse

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

const (
	// Prefix marks a payload line.
	Prefix = "data: "

	// DefaultMaxLineSize bounds a single line. Agent observations can carry
	// large tool outputs, so this is well above bufio's 64 KiB default.
	DefaultMaxLineSize = 16 << 20

	initialBufSize = 4096
)

// Option configures a [Decoder].
type Option func(*config)

type config struct {
	maxLineSize int
}

// WithMaxLineSize sets the longest line the decoder accepts. Longer lines
// fail the stream with [bufio.ErrTooLong].
func WithMaxLineSize(n int) Option {
	return func(c *config) { c.maxLineSize = n }
}

// Decoder yields payloads from a byte stream. It is single-use: once Next
// returns an error, every later call returns the same error.
type Decoder struct {
	scanner *bufio.Scanner
	err     error
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	cfg := config{maxLineSize: DefaultMaxLineSize}
	for _, o := range opts {
		o(&cfg)
	}
	bufSize := initialBufSize
	if cfg.maxLineSize < bufSize {
		bufSize = cfg.maxLineSize
	}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufSize), cfg.maxLineSize)
	s.Split(scanTerminatedLines)
	return &Decoder{scanner: s}
}

// Next returns the next payload with the prefix stripped. It returns io.EOF
// when the input ends and the reader's error when reading fails.
func (d *Decoder) Next() (string, error) {
	if d.err != nil {
		return "", d.err
	}
	for d.scanner.Scan() {
		if payload, ok := strings.CutPrefix(d.scanner.Text(), Prefix); ok {
			return payload, nil
		}
	}
	d.err = d.scanner.Err()
	if d.err == nil {
		d.err = io.EOF
	}
	return "", d.err
}

// scanTerminatedLines works like [bufio.ScanLines] except that it never
// returns the final unterminated line: at EOF the scanner stops with the
// fragment still buffered and discards it.
func scanTerminatedLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, dropCR(data[:i]), nil
	}
	return 0, nil, nil
}

func dropCR(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[:len(data)-1]
	}
	return data
}
