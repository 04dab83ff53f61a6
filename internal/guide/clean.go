// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

import (
	"regexp"
	"strings"
)

// Model output arrives with assorted wrapper noise: fenced code blocks
// around the whole section, editorial meta-comments, top-level headings
// that collide with the guide title. CleanSection strips all of it.

var (
	openFencePattern  = regexp.MustCompile("(?m)^```markdown\\s*\n")
	bareFencePattern  = regexp.MustCompile("(?m)^```\\s*\n")
	closeFencePattern = regexp.MustCompile("\n```\\s*$")
	multiBlankPattern = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// metaCommentPatterns match editorial asides the reviewer model likes to
// prepend or append ("Here is the improved version...").
var metaCommentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^This .*section.*maintains.*$`),
	regexp.MustCompile(`(?i)^This .*version.*enhances.*$`),
	regexp.MustCompile(`(?i)^This .*content.*provides.*$`),
	regexp.MustCompile(`(?i)^This .*improved.*section.*$`),
	regexp.MustCompile(`(?i)^The .*section.*has been.*$`),
	regexp.MustCompile(`(?i)^Here.*improved.*version.*$`),
	regexp.MustCompile(`(?i)^This .*revision.*$`),
}

// CleanSection normalizes one generated section to well-formed Markdown:
// code fences removed, meta-comments dropped, a leading level-1 heading
// demoted to level 2, and blank runs collapsed.
func CleanSection(content string) string {
	content = openFencePattern.ReplaceAllString(content, "")
	content = bareFencePattern.ReplaceAllString(content, "")
	content = closeFencePattern.ReplaceAllString(content, "")

	var kept []string
	for _, line := range strings.Split(content, "\n") {
		if isMetaComment(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, line)
	}
	content = strings.Join(kept, "\n")

	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) > 0 {
		first := strings.TrimSpace(lines[0])
		if strings.HasPrefix(first, "# ") && !strings.HasPrefix(first, "## ") {
			lines[0] = "#" + lines[0]
		}
	}
	content = strings.Join(lines, "\n")

	content = multiBlankPattern.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}

func isMetaComment(line string) bool {
	for _, p := range metaCommentPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}
