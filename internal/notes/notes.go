// Package notes discovers and parses markdown notes under a user-chosen
// directory. The notes root belongs to the user; we only read it.
package notes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNotADirectory is returned when the scan root does not exist or is not a directory.
var ErrNotADirectory = errors.New("not a directory")

// Note is a markdown file we found: its path and parsed content.
type Note struct {
	// Path of the file as encountered during traversal.
	Path string
	// Raw file content.
	Raw string
	// Content without YAML frontmatter (the main markdown body).
	Body string
}

// Scan walks root recursively and returns all markdown notes under it.
// Hidden entries (leading dot) are skipped, including entire hidden
// directories. Symbolic links are not followed during traversal.
func Scan(root string) ([]Note, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	var notes []Note
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}

		// Stat (not Lstat) so a symlink pointing at a regular markdown
		// file still qualifies, while broken links are skipped.
		fi, statErr := os.Stat(path)
		if statErr != nil || !fi.Mode().IsRegular() {
			return nil
		}

		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("failed to read file %s: %w", path, readErr)
		}
		if !utf8.Valid(raw) {
			return fmt.Errorf("failed to read file %s: not valid UTF-8 text", path)
		}

		content := string(raw)
		notes = append(notes, Note{
			Path: path,
			Raw:  content,
			Body: StripFrontmatter(content),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// StripFrontmatter removes an optional YAML frontmatter block (content
// between the first --- and the next --- line) and returns the remaining
// body. An unterminated block is left alone: the full content is returned
// unchanged rather than partially stripped.
func StripFrontmatter(content string) string {
	s := strings.TrimLeftFunc(content, unicode.IsSpace)
	if !strings.HasPrefix(s, "---") {
		return content
	}

	rest := strings.TrimPrefix(s, "---")
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return content
	}
	return strings.TrimLeftFunc(rest[end+len("\n---"):], unicode.IsSpace)
}
