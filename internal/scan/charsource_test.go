package scan

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain reads every character through Current/Advance.
func drain(s *CharSource) string {
	var b strings.Builder
	for !s.AtEnd() {
		b.WriteByte(s.Current())
		s.Advance()
	}
	return b.String()
}

func TestCharSource_ReadsAcrossWindows(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
	}{
		{name: "input smaller than one window", input: "abc", width: 8},
		{name: "input exactly one window", input: "abcdefgh", width: 8},
		{name: "input spans both windows", input: "abcdefghijkl", width: 8},
		{name: "input forces refills", input: strings.Repeat("abcdefghij", 10), width: 4},
		{name: "tiny window", input: "hello world", width: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCharSource(strings.NewReader(tt.input), tt.width)
			assert.Equal(t, tt.input, drain(s), "refills must be invisible to the reader")
			assert.True(t, s.AtEnd())
		})
	}
}

func TestCharSource_PeekAcrossBoundary(t *testing.T) {
	// Window of 4: "abcd" in the first window, "efgh" in the second.
	s := NewCharSource(strings.NewReader("abcdefgh"), 4)

	for i := 0; i < 3; i++ {
		s.Advance()
	}
	assert.Equal(t, byte('d'), s.Current())
	assert.Equal(t, byte('e'), s.Peek(), "peek at the last cell of a window must see the next window")

	s.Advance()
	assert.Equal(t, byte('e'), s.Current())
}

func TestCharSource_PeekAtEndOfInput(t *testing.T) {
	s := NewCharSource(strings.NewReader("ab"), 8)
	s.Advance()
	assert.Equal(t, byte('b'), s.Current())
	assert.Equal(t, Sentinel, s.Peek())
}

func TestCharSource_PositionTracking(t *testing.T) {
	s := NewCharSource(strings.NewReader("ab\ncd"), 8)

	type pos struct{ line, col int }
	var got []pos
	for !s.AtEnd() {
		got = append(got, pos{s.Line(), s.Col()})
		s.Advance()
	}

	want := []pos{
		{1, 1}, // a
		{1, 2}, // b
		{1, 3}, // \n
		{2, 1}, // c
		{2, 2}, // d
	}
	assert.Equal(t, want, got)
}

func TestCharSource_PositionAcrossBoundary(t *testing.T) {
	// Newline sits on the last cell of the first window.
	s := NewCharSource(strings.NewReader("abc\ndef"), 4)
	for i := 0; i < 4; i++ {
		s.Advance()
	}
	assert.Equal(t, byte('d'), s.Current())
	assert.Equal(t, 2, s.Line())
	assert.Equal(t, 1, s.Col())
}

func TestCharSource_AdvanceIdempotentAtEnd(t *testing.T) {
	s := NewCharSource(strings.NewReader("x"), 8)
	s.Advance()
	require.True(t, s.AtEnd())

	line, col := s.Line(), s.Col()
	for i := 0; i < 5; i++ {
		s.Advance()
	}
	assert.Equal(t, Sentinel, s.Current())
	assert.Equal(t, line, s.Line())
	assert.Equal(t, col, s.Col())
}

func TestCharSource_EmptyInput(t *testing.T) {
	s := NewCharSource(strings.NewReader(""), 8)
	assert.True(t, s.AtEnd())
	assert.Equal(t, Sentinel, s.Current())
	assert.Equal(t, Sentinel, s.Peek())
	assert.Equal(t, 1, s.Line())
	assert.Equal(t, 1, s.Col())
}

func TestCharSource_DefaultWidth(t *testing.T) {
	s := NewCharSource(strings.NewReader("abc"), 0)
	assert.Equal(t, "abc", drain(s))
}

// failingReader returns its payload, then an error on the next read.
type failingReader struct {
	payload string
	served  bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.served {
		return 0, errors.New("disk on fire")
	}
	r.served = true
	return copy(p, r.payload), nil
}

func TestCharSource_ReadFailureDegradesToEOF(t *testing.T) {
	s := NewCharSource(&failingReader{payload: "ab"}, 2)
	assert.Equal(t, "ab", drain(s), "data read before the failure is still served")
	assert.True(t, s.AtEnd())
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.src"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening source")
}

func TestOpen_ReadsFileAndClosesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.src")
	require.NoError(t, os.WriteFile(path, []byte("int x;"), 0o600))

	s, err := Open(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "int x;", drain(s))

	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "second close must be a no-op")
}
