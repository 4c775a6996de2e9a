// Package web holds embedded static assets and templates for reading-log.
package web

import "embed"

// TemplateFS contains the HTML page template.
//
//go:embed templates
var TemplateFS embed.FS

// StaticFS contains the favicon and any other static assets.
//
//go:embed static
var StaticFS embed.FS
