package components

import (
	"strings"

	"pulse_landing/middleware"
	"pulse_landing/services"
	"pulse_landing/services/theme"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// Button sizes
const (
	SizeSm = "sm"
	SizeMd = "md"
	SizeLg = "lg"
	// SizeFluid is md on compact viewports and lg on wide ones
	SizeFluid = "fluid"
)

// styledButton renders a button from a style descriptor.
// Hover and active colours travel as CSS custom properties so the
// stylesheet only needs one rule per pseudo-state.
func styledButton(style services.ButtonStyle, size string, children ...g.Node) g.Node {
	return Button(
		c.Classes{
			"btn":                      true,
			"btn-" + style.Variant:     true,
			"palette-" + style.Palette: true,
			"btn-" + size:              size != SizeMd,
		},
		Style(pseudoVars(style)),
		g.If(style.Disabled, Disabled()),
		g.If(style.Disabled, g.Attr("aria-disabled", "true")),
		g.Group(children),
	)
}

func pseudoVars(style services.ButtonStyle) string {
	vars := []string{}
	if style.HoverBg != "" {
		vars = append(vars, "--btn-hover-bg:"+theme.Var(style.HoverBg))
	}
	if style.ActiveBg != "" {
		vars = append(vars, "--btn-active-bg:"+theme.Var(style.ActiveBg))
	}
	return strings.Join(vars, ";")
}

func cardVars(style services.CardStyle) string {
	return "--card-border:" + theme.Var(style.BorderColor) + ";--card-shadow:" + theme.ShadowVar(style.Shadow)
}

// Badge variants
const (
	BadgeSubtle  = "subtle"
	BadgeOutline = "outline"
)

func badge(variant, text string) g.Node {
	return Span(Class("badge badge-"+variant), g.Text(text))
}

// icon wraps a heroicon so it can be sized by the stylesheet
func icon(svg g.Node, extra ...string) g.Node {
	return Span(
		Class(strings.Join(append([]string{"icon"}, extra...), " ")),
		g.Attr("aria-hidden", "true"),
		svg,
	)
}

// csrfField is the hidden token for plain form posts
func csrfField(token string) g.Node {
	return Input(Type("hidden"), Name(middleware.CSRFFormField), Value(token))
}
