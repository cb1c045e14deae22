package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScanCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "note.md"), []byte("# Title\nBody."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "skip.txt"), []byte("not a note"), 0o644))

	out, err := runCommand(t, "scan", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Scanned 1 note(s) under "+root)
	assert.Contains(t, out, "note.md")
	assert.NotContains(t, out, "skip.txt")
}

func TestScanWithoutRootFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := runCommand(t, "scan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no notes root configured")
}

func TestChunksCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "note.md"), []byte("One.\n\nTwo."), 0o644))

	out, err := runCommand(t, "chunks", root, "--max-chars", "512")
	require.NoError(t, err)
	assert.Contains(t, out, "Chunked 1 note(s) into 2 chunk(s)")
}

func TestResolveRootPrefersArgument(t *testing.T) {
	root, err := resolveRoot([]string{"/some/path"})
	require.NoError(t, err)
	assert.Equal(t, "/some/path", root)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short", 10))
	assert.Equal(t, "abc...", preview("abcdef", 3))
}
