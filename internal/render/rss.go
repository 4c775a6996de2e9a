package render

import (
	"strings"
	"time"

	"github.com/ameese/reading-log/internal/reading"
)

// rfc1123GMT matches the HTTP-date rendering browsers and feed readers
// expect for pubDate ("Mon, 02 Jan 2006 15:04:05 GMT").
const rfc1123GMT = "Mon, 02 Jan 2006 15:04:05 GMT"

// xmlEscaper escapes the five XML special characters. The stdlib
// xml.EscapeText is not used because it rewrites apostrophes and newlines
// into numeric references, changing the documented output.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// RSS renders a version-2.0 feed. Items are expected newest-first; the
// channel lastBuildDate comes from the first item, or now when the list is
// empty.
func RSS(items []reading.Item, cfg Config, now time.Time) string {
	title := xmlEscaper.Replace(cfg.title())

	updated := now.UTC().Format(rfc1123GMT)
	if len(items) > 0 {
		if t, ok := reading.ParseTime(items[0].AddedAt); ok {
			updated = t.Format(rfc1123GMT)
		}
	}

	entries := make([]string, 0, len(items))
	for _, item := range items {
		entryTitle := xmlEscaper.Replace(item.Title)
		entryURL := xmlEscaper.Replace(item.URL)
		entries = append(entries, strings.Join([]string{
			"    <item>",
			"      <title>" + entryTitle + "</title>",
			"      <link>" + entryURL + "</link>",
			"      <guid>" + entryURL + "</guid>",
			"      <pubDate>" + pubDate(item.AddedAt) + "</pubDate>",
			"      <description>" + entryTitle + "</description>",
			"    </item>",
		}, "\n"))
	}

	body := strings.Join(entries, "\n")
	if body == "" {
		body = "    <item></item>"
	}

	return strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<rss version="2.0">`,
		"  <channel>",
		"    <title>" + title + "</title>",
		"    <link>" + xmlEscaper.Replace(cfg.siteLink()) + "</link>",
		"    <description>" + title + "</description>",
		"    <lastBuildDate>" + updated + "</lastBuildDate>",
		body,
		"  </channel>",
		"</rss>",
	}, "\n")
}

// pubDate formats a stored added_at value as an RFC-1123 GMT date, falling
// back to the escaped raw value when it does not parse.
func pubDate(addedAt string) string {
	if t, ok := reading.ParseTime(addedAt); ok {
		return t.Format(rfc1123GMT)
	}
	return xmlEscaper.Replace(addedAt)
}
