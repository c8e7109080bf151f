package components

import (
	"context"

	"pulse_landing/services"
	"pulse_landing/services/i18n"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func NavBar(ctx context.Context, brand string) g.Node {
	return Header(
		Class("surface border-b"),
		Div(
			Class("container nav"),
			Nav(
				Class("row between"),
				A(
					Class("row gap-3"),
					Href("/"),
					Div(Class("logo")),
					Span(Class("bold"), g.Text(brand)),
				),
				Div(
					Class("nav-links row"),
					A(Href("#features"), g.Text(i18n.T(ctx, "nav.features"))),
					A(Href("#pricing"), g.Text(i18n.T(ctx, "nav.pricing"))),
					Span(g.Text(i18n.T(ctx, "nav.faq"))),
				),
				A(
					Href("#subscribe"),
					ID("nav-get-started"),
					Class("btn btn-solid palette-brand btn-sm"),
					Style(pseudoVars(services.BrandButtonStyle())),
					g.Text(i18n.T(ctx, "nav.get_started")),
				),
			),
		),
	)
}
