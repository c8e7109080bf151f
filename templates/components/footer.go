package components

import (
	"context"

	"pulse_landing/services"
	"pulse_landing/services/i18n"

	"github.com/maragudk/gomponents-heroicons/v2/outline"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PageFooter prints the copyright line; the year comes from clock
func PageFooter(ctx context.Context, clock services.Clock, brand string) g.Node {
	return Footer(
		Class("container footer"),
		Div(
			Class("row between"),
			P(
				Class("subtle small"),
				g.Text(i18n.T(ctx, "footer.copyright", map[string]interface{}{
					"year":  clock.Now().Year(),
					"brand": brand,
				})),
			),
			Button(
				Type("button"),
				ID("theme-toggle"),
				Class("theme-toggle"),
				g.Attr("aria-label", i18n.T(ctx, "footer.toggle_theme")),
				icon(outline.Moon(), "light-only"),
				icon(outline.Sun(), "dark-only"),
			),
		),
	)
}
