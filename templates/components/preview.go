package components

import (
	"context"

	"pulse_landing/services"
	"pulse_landing/services/i18n"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PreviewCard is decorative; its button does nothing
func PreviewCard(ctx context.Context) g.Node {
	return Div(
		Class("card rounded-2xl preview"),
		Style(cardVars(services.PlanCardStyle(false))),
		Div(
			Class("stack gap-5"),
			Div(
				Class("row between"),
				H3(g.Text(i18n.T(ctx, "preview.title"))),
				badge(BadgeOutline, i18n.T(ctx, "preview.badge")),
			),
			Div(
				Class("card inset"),
				Div(
					Class("stack gap-3"),
					P(Class("semibold"), g.Text(i18n.T(ctx, "preview.card_title"))),
					P(Class("muted small"), g.Text(i18n.T(ctx, "preview.card_text"))),
					styledButton(services.BrandButtonStyle(), SizeSm,
						Type("button"),
						g.Text(i18n.T(ctx, "preview.action")),
					),
				),
			),
		),
	)
}
