package components

import (
	"context"

	"pulse_landing/models"
	"pulse_landing/services/i18n"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Features(ctx context.Context) g.Node {
	return Section(
		ID("features"),
		Class("container section"),
		Div(
			Class("stack gap-6"),
			H2(g.Text(i18n.T(ctx, "features.title"))),
			Div(
				Class("grid grid-3"),
				g.Group(g.Map(models.Features(), func(f models.Feature) g.Node {
					return Div(
						Class("card"),
						Data("feature", f.Key),
						Div(
							Class("stack gap-2"),
							P(Class("bold"), g.Text(i18n.T(ctx, f.Title))),
							P(Class("muted small"), g.Text(i18n.T(ctx, f.Text))),
						),
					)
				})),
			),
		),
	)
}
