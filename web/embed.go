// Package web embeds the static pages served by the API binary.
package web

import "embed"

// PagesFS embeds the login and dashboard pages.
//
//go:embed pages/*.html
var PagesFS embed.FS
