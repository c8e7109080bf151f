package components

import (
	"context"
	"encoding/json"
	"log"

	"pulse_landing/middleware"
	"pulse_landing/services/i18n"
	"pulse_landing/services/theme"
	"pulse_landing/static"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	CSRFToken   string
	// HTMX loads htmx and sends the CSRF header on every htmx request
	HTMX bool
}

// themeBootstrap applies the stored light/dark choice before first paint
const themeBootstrap = `if (localStorage.theme === 'dark' || (!('theme' in localStorage) && window.matchMedia('(prefers-color-scheme: dark)').matches)) {
	document.documentElement.classList.add('dark')
} else {
	document.documentElement.classList.remove('dark')
}`

func Layout(ctx context.Context, config PageConfig, content ...g.Node) g.Node {
	nonce := middleware.GetNonce(ctx)

	return Doctype(
		HTML(
			Lang(i18n.GetLocale(ctx)),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				StyleEl(g.Raw(theme.CSSVariables())),
				Link(Rel("stylesheet"), Href(middleware.AssetURL(ctx, static.CSSPath))),

				Script(g.Attr("nonce", nonce), g.Raw(themeBootstrap)),
				g.If(config.HTMX, Script(Src(middleware.HTMXScriptURL), g.Attr("nonce", nonce))),
			),
			Body(
				g.If(config.HTMX, g.Attr("hx-headers", hxHeaders(config.CSRFToken))),
				g.Group(content),
				Script(Src(middleware.AssetURL(ctx, static.ThemeJSPath)), g.Attr("nonce", nonce)),
			),
		),
	)
}

// hxHeaders is the hx-headers value that makes htmx send the CSRF token
func hxHeaders(csrfToken string) string {
	b, err := json.Marshal(map[string]string{middleware.CSRFHeader: csrfToken})
	if err != nil {
		log.Printf("[WARNING] Error encoding hx-headers: %v", err)
		return "{}"
	}
	return string(b)
}
