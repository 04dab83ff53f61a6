package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	got, err := Render([]byte("# Title\n\nSome **bold** text.\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.NoError(t, err)

	html := string(got)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>bold</strong>")
	// GFM tables render as real tables.
	assert.Contains(t, html, "<table>")
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "complete_guide.md")
	require.NoError(t, os.WriteFile(mdPath, []byte("# Learning Chess\n\n## Introduction\n\nHello.\n"), 0o644))

	outPath, err := File(mdPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "complete_guide.html"), outPath)

	page, err := os.ReadFile(outPath)
	require.NoError(t, err)
	text := string(page)
	assert.True(t, strings.HasPrefix(text, "<!DOCTYPE html>"))
	assert.Contains(t, text, "<title>Learning Chess</title>")
	assert.Contains(t, text, "<h2")
}

func TestFileFallsBackToFilenameTitle(t *testing.T) {
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(mdPath, []byte("no heading here\n"), 0o644))

	outPath, err := File(mdPath)
	require.NoError(t, err)

	page, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<title>notes.md</title>")
}

func TestFileMissingInput(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "absent.md"))
	require.Error(t, err)
}

func TestDocumentTitle(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"first heading wins", "# One\n\n# Two\n", "One"},
		{"skips level-2 headings", "## Sub\n\n# Real Title\n", "Real Title"},
		{"no heading", "plain text\n", ""},
		{"indented heading", "   # Spaced\n", "Spaced"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, documentTitle(tt.markdown))
		})
	}
}
