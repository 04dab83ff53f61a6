// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

import (
	"fmt"
	"strings"

	"github.com/pdiddy/guide-creator/pkg/types"
)

// GuideFile is the name of the compiled guide artifact.
const GuideFile = "complete_guide.md"

// Compile assembles the final document: title, introduction, each section's
// cleaned content in outline order, then the conclusion.
func Compile(outline *types.GuideOutline, sections map[string]string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", outline.Title)
	fmt.Fprintf(&b, "## Introduction\n\n%s\n\n", outline.Introduction)

	for _, s := range outline.Sections {
		fmt.Fprintf(&b, "%s\n\n", sections[s.Title])
	}

	fmt.Fprintf(&b, "## Conclusion\n\n%s\n\n", outline.Conclusion)
	return b.String()
}

// previousSectionsText builds the context block fed to the content crew:
// every already-written section under a shared heading, or a sentinel when
// none exist yet.
func previousSectionsText(completed []string, sections map[string]string) string {
	if len(completed) == 0 {
		return "No previous sections written yet."
	}

	var b strings.Builder
	b.WriteString("# Previously Written Sections\n\n")
	for _, title := range completed {
		fmt.Fprintf(&b, "## %s\n\n", title)
		fmt.Fprintf(&b, "%s\n\n", sections[title])
	}
	return b.String()
}
