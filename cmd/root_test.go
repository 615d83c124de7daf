package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRoot_LexesFile(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(".", "input.src")
	require.NoError(t, os.WriteFile(path, []byte("int x = 42; // init\n"), 0o600))

	out, err := execute(t, path)
	require.NoError(t, err)

	assert.Contains(t, out, "KEYWORD")
	assert.Contains(t, out, "int")
	assert.Contains(t, out, "IDENTIFIER")
	assert.Contains(t, out, "NUMBER")
	assert.Contains(t, out, "COMMENT")
	assert.Contains(t, out, "EOF")
	assert.Contains(t, out, "6 tokens")
}

func TestRoot_SourceNotFound(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "no-such-file.src")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRoot_CreatesDefaultConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, os.WriteFile("input.src", []byte("x"), 0o600))
	_, err := execute(t, "input.src")
	require.NoError(t, err)

	_, statErr := os.Stat(".lexa.yaml")
	assert.NoError(t, statErr, "first run should write the default config")
}

func TestRoot_ColorOutputPreservesSource(t *testing.T) {
	t.Chdir(t.TempDir())

	src := "if (x >= 1) { return x; } // note\n"
	require.NoError(t, os.WriteFile("input.src", []byte(src), 0o600))

	out, err := execute(t, "--color", "input.src")
	require.NoError(t, err)
	assert.Equal(t, src, ansiRegex.ReplaceAllString(out, ""))

	// Reset the flag for later tests; cobra keeps flag state between runs.
	require.NoError(t, rootCmd.Flags().Set("color", "false"))
}
