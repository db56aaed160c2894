// Package ingestion normalizes uploaded resume content into the plain text
// consumed by the extraction pipeline. Binary formats (PDF, DOCX) are
// converted to text upstream by the upload collaborator; this package
// handles the text and HTML forms.
package ingestion

import (
	"regexp"
	"strings"
)

var multiSpaceRe = regexp.MustCompile(`\s+`)

// CleanText normalizes resume text while preserving structure: CRLF to LF,
// trailing whitespace stripped, excess blank lines collapsed, and bullet
// markers kept intact so the structural extractor can still split on them.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = collapseBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine strips trailing whitespace and collapses runs of spaces within
// a line, keeping leading indentation and bullet markers.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	// Bullet lines keep their marker and indentation untouched.
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "• ") {
		indent := len(line) - len(trimmed)
		return strings.Repeat(" ", indent) + trimmed
	}

	indent := len(line) - len(trimmed)
	content := multiSpaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// collapseBlankLines reduces runs of 3+ newlines to exactly 2 so paragraph
// boundaries stay meaningful for the emergency extractor.
func collapseBlankLines(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}
