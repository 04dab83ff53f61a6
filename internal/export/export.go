// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders a compiled guide to standalone HTML.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// md is the shared converter: GitHub-flavored tables and strikethrough,
// hard wraps preserved as in the source document.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { max-width: 48rem; margin: 2rem auto; padding: 0 1rem; font-family: Georgia, serif; line-height: 1.6; }
pre { background: #f6f8fa; padding: 1rem; overflow-x: auto; }
code { font-family: Menlo, monospace; font-size: 0.9em; }
</style>
</head>
<body>
%s</body>
</html>
`

// Render converts Markdown to an HTML document body.
func Render(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := md.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// File reads a Markdown file and writes the rendered HTML next to it with
// an .html extension, returning the output path.
func File(mdPath string) (string, error) {
	data, err := os.ReadFile(mdPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", mdPath, err)
	}

	body, err := Render(data)
	if err != nil {
		return "", err
	}

	title := documentTitle(string(data))
	if title == "" {
		title = filepath.Base(mdPath)
	}
	page := fmt.Sprintf(pageTemplate, title, body)

	outPath := strings.TrimSuffix(mdPath, filepath.Ext(mdPath)) + ".html"
	if err := os.WriteFile(outPath, []byte(page), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	return outPath, nil
}

// documentTitle returns the first level-1 heading, if any.
func documentTitle(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}
	return ""
}
