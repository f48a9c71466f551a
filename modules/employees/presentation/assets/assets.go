// Package assets embeds the static files the employee pages link to.
package assets

import "embed"

//go:embed app.css
var FS embed.FS
