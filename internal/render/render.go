// Package render turns an item list into each supported output format. Every
// renderer is a pure function of its arguments and the site configuration.
package render

const (
	defaultSiteTitle = "Reading Log"
	defaultSiteURL   = "https://read.aaronmeese.com"
)

// Config carries the optional site settings used by the HTML and RSS
// renderers. Zero values fall back to the hardcoded defaults.
type Config struct {
	SiteTitle string
	SiteURL   string
	MoreURL   string
}

func (c Config) title() string {
	if c.SiteTitle != "" {
		return c.SiteTitle
	}
	return defaultSiteTitle
}

// siteLink resolves the channel/header link through the fallback chain:
// site URL, then the "more" URL, then the default.
func (c Config) siteLink() string {
	if c.SiteURL != "" {
		return c.SiteURL
	}
	if c.MoreURL != "" {
		return c.MoreURL
	}
	return defaultSiteURL
}
