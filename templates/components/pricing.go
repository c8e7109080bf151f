package components

import (
	"context"

	"pulse_landing/models"
	"pulse_landing/services"
	"pulse_landing/services/i18n"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PricingID is the element htmx replaces after a plan is selected
const PricingID = "pricing"

type PricingProps struct {
	Selected  models.PlanID
	CSRFToken string
	HTMX      bool
}

// Pricing renders the plan selector and the plan cards. Every plan button
// selects its plan; the whole section is re-rendered so exactly one card
// carries the selected treatment.
func Pricing(ctx context.Context, p PricingProps) g.Node {
	plans := models.Catalog()

	return Section(
		ID(PricingID),
		Class("container section"),
		Form(
			Class("stack gap-6"),
			Method("post"),
			Action("/plan/"+string(p.Selected)),
			csrfField(p.CSRFToken),
			Div(
				Class("row between wrap gap-4"),
				Div(
					Class("stack gap-1"),
					H2(g.Text(i18n.T(ctx, "pricing.title"))),
					P(Class("muted small"), g.Text(i18n.T(ctx, "pricing.subtitle"))),
				),
				Div(
					Class("panel row gap-2"),
					g.Attr("role", "tablist"),
					g.Group(g.Map(plans, func(plan models.Plan) g.Node {
						selected := plan.ID == p.Selected
						return styledButton(services.PlanTabStyle(selected), SizeSm,
							selectPlanAttrs(plan.ID, p.HTMX),
							g.Attr("role", "tab"),
							g.Attr("aria-selected", boolString(selected)),
							Data("plan", string(plan.ID)),
							g.Text(plan.Name),
						)
					})),
				),
			),
			Div(
				Class("grid grid-3"),
				g.Group(g.Map(plans, func(plan models.Plan) g.Node {
					return planCard(ctx, plan, plan.ID == p.Selected, p.HTMX)
				})),
			),
		),
	)
}

func planCard(ctx context.Context, plan models.Plan, selected, htmx bool) g.Node {
	style := services.PlanCardStyle(selected)

	return Div(
		Class("card rounded-2xl plan-card"),
		Data("plan", string(plan.ID)),
		Data("selected", boolString(selected)),
		Style(cardVars(style)),
		Div(
			Class("stack gap-3"),
			Div(
				Class("row between"),
				P(Class("bold"), g.Text(plan.Name)),
				g.If(style.ShowBadge, badge(BadgeSubtle, i18n.T(ctx, "pricing.selected"))),
			),
			P(Class("price"), g.Text(plan.Price)),
			P(Class("muted small"), g.Text(i18n.T(ctx, "pricing.plans."+string(plan.ID)))),
			styledButton(services.PlanActionStyle(selected), SizeMd,
				selectPlanAttrs(plan.ID, htmx),
				g.Text(i18n.T(ctx, "pricing.choose", map[string]interface{}{"plan": plan.Name})),
			),
		),
	)
}

// selectPlanAttrs makes a submit button post to /plan/:id, with or without htmx
func selectPlanAttrs(id models.PlanID, htmx bool) g.Node {
	target := "/plan/" + string(id)
	return g.Group([]g.Node{
		Type("submit"),
		g.Attr("formaction", target),
		g.If(htmx, g.Attr("hx-post", target)),
		g.If(htmx, g.Attr("hx-target", "#"+PricingID)),
		g.If(htmx, g.Attr("hx-swap", "outerHTML")),
	})
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
