package render

import (
	"bytes"
	"html/template"
	"net/url"
	"strings"

	"github.com/ameese/reading-log/internal/reading"
	"github.com/ameese/reading-log/web"
)

var pageTmpl = template.Must(template.New("").ParseFS(web.TemplateFS, "templates/page.html"))

type pageItem struct {
	Title string
	URL   string
	Host  string
	Date  string
}

type pageData struct {
	SiteTitle string
	SiteURL   string
	Items     []pageItem
}

// HTML renders the standalone reading page. Interpolated text is escaped by
// html/template. The header links the site title only when a site URL is
// configured.
func HTML(items []reading.Item, cfg Config) (string, error) {
	data := pageData{
		SiteTitle: cfg.title(),
		SiteURL:   cfg.SiteURL,
		Items:     make([]pageItem, 0, len(items)),
	}
	for _, item := range items {
		data.Items = append(data.Items, pageItem{
			Title: item.Title,
			URL:   item.URL,
			Host:  displayHost(item.URL),
			Date:  datePart(item.AddedAt),
		})
	}

	var buf bytes.Buffer
	if err := pageTmpl.ExecuteTemplate(&buf, "page.html", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// displayHost extracts the hostname with any leading "www." stripped.
func displayHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// datePart returns the YYYY-MM-DD prefix of a stored added_at value.
func datePart(addedAt string) string {
	if len(addedAt) < 10 {
		return addedAt
	}
	return addedAt[:10]
}
