package reading

import (
	"net/url"
	"strings"
	"time"
)

const (
	truncateThreshold = 85
	truncateTo        = 80
)

// ISOFormat is the canonical added_at layout: millisecond precision, UTC.
// Lexicographic comparison of values in this layout matches chronological
// order, which the item sort relies on.
const ISOFormat = "2006-01-02T15:04:05.000Z"

// isoLayouts are the accepted input formats for NormalizeISO, most specific
// first.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822Z,
}

// NormalizeText trims the value and collapses internal whitespace runs to a
// single space. Returns "" when nothing remains.
func NormalizeText(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// NormalizeURL canonicalizes an absolute URL: the host is lowercased and an
// empty path becomes "/". Returns "" when the value does not parse as an
// absolute URL with a host.
func NormalizeURL(value string) string {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ""
	}
	u.Host = strings.ToLower(u.Host)
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}

// NormalizeISO parses a timestamp in any accepted layout and re-serializes it
// in ISOFormat (UTC). Returns "" when the value parses under no layout.
func NormalizeISO(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(ISOFormat)
		}
	}
	return ""
}

// ParseTime converts a normalized added_at value back into a time.Time.
func ParseTime(value string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// TruncateTitle shortens long titles for single-line rendering. Titles of 85
// or more runes become the first 80 runes, right-trimmed, plus an ellipsis.
func TruncateTitle(title string) string {
	normalized := NormalizeText(title)
	runes := []rune(normalized)
	if len(runes) < truncateThreshold {
		return normalized
	}
	return strings.TrimRight(string(runes[:truncateTo]), " \t") + "…"
}
