package components

import (
	"context"

	"pulse_landing/services/i18n"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FinalCTA is the second subscribe control. It has no email field of its
// own and submits whatever was typed into the hero form.
func FinalCTA(ctx context.Context, p SubscribeProps) g.Node {
	return Section(
		Class("surface border-t"),
		Div(
			Class("container cta"),
			Div(
				Class("grid grid-2"),
				Div(
					Class("stack gap-2"),
					H2(g.Text(i18n.T(ctx, "cta.title"))),
					P(Class("muted"), g.Text(i18n.T(ctx, "cta.text"))),
				),
				Form(
					Class("row actions"),
					Method("post"),
					Action("/subscribe"),
					g.If(p.HTMX, g.Attr("hx-post", "/subscribe")),
					g.If(p.HTMX, g.Attr("hx-swap", "none")),
					csrfField(p.CSRFToken),
					SubmitButton(ctx, CTASubmitID, SizeLg, p, false),
				),
			),
		),
	)
}
