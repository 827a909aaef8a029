package chat

import (
	"html"
	"regexp"
	"strings"
)

const summaryMaxLength = 200

var (
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	headingLine    = regexp.MustCompile(`^#{1,6}\s+.+`)
	// Horizontal whitespace only: \s would eat the newline of a
	// preceding blank line and collapse paragraph breaks.
	bulletPrefix   = regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]+`)
	numberedPrefix = regexp.MustCompile(`(?m)^[ \t]*(\d+)\.[ \t]+`)

	htmlH4     = regexp.MustCompile(`(?m)^### (.+)$`)
	htmlH3     = regexp.MustCompile(`(?m)^## (.+)$`)
	htmlH2     = regexp.MustCompile(`(?m)^# (.+)$`)
	htmlBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	htmlItalic = regexp.MustCompile(`\*(.+?)\*`)
)

// FormatForDisplay normalizes markdown-flavored agent output into clean,
// readable plain text. Applying it twice yields the same result.
func FormatForDisplay(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}

	formatted := excessNewlines.ReplaceAllString(raw, "\n\n")
	formatted = spaceAfterHeadings(formatted)
	formatted = bulletPrefix.ReplaceAllString(formatted, "• ")
	formatted = numberedPrefix.ReplaceAllString(formatted, "$1. ")
	return strings.TrimSpace(formatted)
}

// spaceAfterHeadings inserts a blank line after any heading that runs
// straight into the next line of text.
func spaceAfterHeadings(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		out = append(out, line)
		if headingLine.MatchString(line) && i+1 < len(lines) && lines[i+1] != "" {
			out = append(out, "")
		}
	}
	return strings.Join(out, "\n")
}

// FormatAsHTML converts agent output to HTML for rich display.
func FormatAsHTML(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}

	escaped := html.EscapeString(raw)

	escaped = htmlH4.ReplaceAllString(escaped, "<h4>$1</h4>")
	escaped = htmlH3.ReplaceAllString(escaped, "<h3>$1</h3>")
	escaped = htmlH2.ReplaceAllString(escaped, "<h2>$1</h2>")

	escaped = htmlBold.ReplaceAllString(escaped, "<strong>$1</strong>")
	escaped = htmlItalic.ReplaceAllString(escaped, "<em>$1</em>")

	escaped = strings.ReplaceAll(escaped, "\n\n", "</p><p>")
	escaped = strings.ReplaceAll(escaped, "\n", "<br/>")

	return "<p>" + escaped + "</p>"
}

// ExtractSummary returns the first paragraph of a response, truncated at a
// word boundary when it exceeds maxLength characters. A maxLength of zero or
// less uses the default of 200.
func ExtractSummary(response string, maxLength int) string {
	if strings.TrimSpace(response) == "" {
		return response
	}
	if maxLength <= 0 {
		maxLength = summaryMaxLength
	}

	firstParagraph := response
	for _, part := range strings.Split(response, "\n\n") {
		if part != "" {
			firstParagraph = part
			break
		}
	}

	runes := []rune(firstParagraph)
	if len(runes) <= maxLength {
		return firstParagraph
	}

	truncated := string(runes[:maxLength])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 0 {
		truncated = truncated[:lastSpace]
	}
	return truncated + "..."
}
