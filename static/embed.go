// Package static embeds the stylesheet and scripts served under /static.
package static

import "embed"

//go:embed css js
var FS embed.FS

// Paths of the versioned assets
const (
	CSSPath     = "css/style.css"
	ThemeJSPath = "js/theme.js"
)
