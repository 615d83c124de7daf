package scan

import (
	"fmt"
	"io"
	"os"

	"lexa/internal/log"
)

// Sentinel marks the logical end of valid data in a buffer. Once the
// stream is drained it is also what Current returns, so a NUL byte in
// the input terminates the scan early. Input is treated as a plain byte
// stream; text sources do not contain NUL.
const Sentinel byte = 0

// DefaultBufferWidth is the size of each read-ahead window.
const DefaultBufferWidth = 4096

// CharSource presents a boundary-transparent view over a finite byte
// stream through two fixed-size windows. One window is active and holds
// the cursor; when the cursor runs off its end the other window (already
// filled) takes over and the stale one is refilled with the next chunk,
// so token recognition never sees the seam.
//
// Line and column change in exactly one place, Advance, so position
// bookkeeping cannot drift between the two counters.
type CharSource struct {
	r      io.Reader
	closer io.Closer
	bufs   [2][]byte // each width+1, sentinel written after valid data
	width  int
	active int
	off    int
	eof    bool // underlying stream is drained (or failed, see fill)
	line   int
	col    int
}

// NewCharSource creates a source over r and pre-fills both windows so
// the first Current call needs no I/O. A width <= 0 selects
// DefaultBufferWidth.
func NewCharSource(r io.Reader, width int) *CharSource {
	if width <= 0 {
		width = DefaultBufferWidth
	}
	s := &CharSource{r: r, width: width, line: 1, col: 1}
	s.bufs[0] = make([]byte, width+1)
	s.bufs[1] = make([]byte, width+1)
	s.fill(0)
	s.fill(1)
	return s
}

// Open creates a source reading from the file at path. The file handle
// is owned by the source and released by Close.
func Open(path string, width int) (*CharSource, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is the user-supplied input file
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	s := NewCharSource(f, width)
	s.closer = f
	return s, nil
}

// Close releases the underlying handle, if the source owns one. Safe to
// call more than once; only the first call closes.
func (s *CharSource) Close() error {
	if s.closer == nil {
		return nil
	}
	c := s.closer
	s.closer = nil
	return c.Close()
}

// Current returns the character under the cursor, or Sentinel once the
// input is exhausted.
func (s *CharSource) Current() byte {
	return s.bufs[s.active][s.off]
}

// Peek returns the character one position past the cursor without
// advancing. Lookahead of exactly one character is guaranteed; at the
// end of a full window it comes from the start of the other window.
func (s *CharSource) Peek() byte {
	if s.off+1 >= s.width {
		return s.bufs[1-s.active][0]
	}
	return s.bufs[s.active][s.off+1]
}

// AtEnd reports whether the input is exhausted.
func (s *CharSource) AtEnd() bool {
	return s.Current() == Sentinel
}

// Line returns the 1-based line of the cursor.
func (s *CharSource) Line() int { return s.line }

// Col returns the 1-based column of the cursor.
func (s *CharSource) Col() int { return s.col }

// Advance moves the cursor forward one character. Crossing the end of
// the active window swaps windows and refills the one left behind.
// A no-op once the input is exhausted.
func (s *CharSource) Advance() {
	ch := s.Current()
	if ch == Sentinel {
		return
	}
	s.off++
	if s.off == s.width {
		s.active = 1 - s.active
		s.off = 0
		s.fill(1 - s.active)
	}
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
}

// fill reads up to one window of data into bufs[i] and writes the
// sentinel after the last byte read. A read error mid-stream degrades to
// end-of-stream: the scan finishes with whatever was already buffered.
func (s *CharSource) fill(i int) {
	buf := s.bufs[i]
	n := 0
	for n < s.width && !s.eof {
		m, err := s.r.Read(buf[n:s.width])
		n += m
		if err != nil {
			if err != io.EOF {
				log.Warn(log.CatScan, "read failed, treating as end of stream", "error", err)
			}
			s.eof = true
		}
	}
	buf[n] = Sentinel
	if n == 0 {
		s.eof = true
	}
}
