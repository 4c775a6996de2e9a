package render

import (
	"strings"

	"github.com/ameese/reading-log/internal/reading"
)

// markdownEscaper escapes the characters that would break a markdown link
// label: brackets and backslash.
var markdownEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)

// Markdown renders one bullet line per item: `- [title](url)`. Titles are
// truncated for single-line display. An empty list renders a placeholder.
func Markdown(items []reading.Item) string {
	if len(items) == 0 {
		return "- _No items yet._"
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		title := markdownEscaper.Replace(reading.TruncateTitle(item.Title))
		lines = append(lines, "- ["+title+"]("+item.URL+")")
	}
	return strings.Join(lines, "\n")
}
