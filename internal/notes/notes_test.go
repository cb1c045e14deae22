package notes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFrontmatter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "plain content",
			content: "Hello world.",
			want:    "Hello world.",
		},
		{
			name:    "yaml frontmatter",
			content: "---\ntitle: X\n---\n\nHello world.",
			want:    "Hello world.",
		},
		{
			name:    "multi-field frontmatter",
			content: "---\ntitle: Foo\ndate: 2024-01-01\n---\n\nActual content here.",
			want:    "Actual content here.",
		},
		{
			name:    "empty frontmatter block",
			content: "---\n---\nBody",
			want:    "Body",
		},
		{
			name:    "unterminated frontmatter left unchanged",
			content: "---\ntitle: X\nHello world.",
			want:    "---\ntitle: X\nHello world.",
		},
		{
			name:    "leading whitespace before delimiter",
			content: "\n\n---\na: b\n---\nBody",
			want:    "Body",
		},
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFrontmatter(tt.content))
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScan(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.md"), "# A\n\nAlpha.")
	writeFile(t, filepath.Join(tmp, "sub", "b.md"), "---\ntitle: B\n---\n\nBeta.")
	writeFile(t, filepath.Join(tmp, "notes.txt"), "not markdown")
	writeFile(t, filepath.Join(tmp, ".hidden.md"), "hidden file")
	writeFile(t, filepath.Join(tmp, ".obsidian", "c.md"), "inside hidden dir")

	ns, err := Scan(tmp)
	require.NoError(t, err)
	require.Len(t, ns, 2)

	byPath := make(map[string]Note, len(ns))
	for _, n := range ns {
		byPath[filepath.Base(n.Path)] = n
	}

	a, ok := byPath["a.md"]
	require.True(t, ok)
	assert.Equal(t, "# A\n\nAlpha.", a.Raw)
	assert.Equal(t, "# A\n\nAlpha.", a.Body)

	b, ok := byPath["b.md"]
	require.True(t, ok)
	assert.Equal(t, "Beta.", b.Body)
	assert.Equal(t, "---\ntitle: B\n---\n\nBeta.", b.Raw)
}

func TestScanNoQualifyingFiles(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "readme.txt"), "text")
	writeFile(t, filepath.Join(tmp, ".hidden", "note.md"), "hidden")

	ns, err := Scan(tmp)
	require.NoError(t, err)
	assert.Empty(t, ns)
}

func TestScanNotADirectory(t *testing.T) {
	tmp := t.TempDir()

	_, err := Scan(filepath.Join(tmp, "missing"))
	assert.ErrorIs(t, err, ErrNotADirectory)

	file := filepath.Join(tmp, "note.md")
	writeFile(t, file, "content")
	_, err = Scan(file)
	assert.ErrorIs(t, err, ErrNotADirectory)
}

func TestScanDeterministic(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "one.md"), "One.")
	writeFile(t, filepath.Join(tmp, "two.md"), "Two.")
	writeFile(t, filepath.Join(tmp, "nested", "three.md"), "Three.")

	first, err := Scan(tmp)
	require.NoError(t, err)
	second, err := Scan(tmp)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
