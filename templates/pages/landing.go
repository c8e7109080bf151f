package pages

import (
	"context"

	"pulse_landing/models"
	"pulse_landing/services"
	"pulse_landing/services/i18n"
	"pulse_landing/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LandingView holds everything the landing page renders from
type LandingView struct {
	State     models.ViewState
	Brand     string
	CSRFToken string
	HTMX      bool
	Clock     services.Clock
}

// SubscribeProps derives the subscribe control props from the view state
func (v LandingView) SubscribeProps() components.SubscribeProps {
	return components.SubscribeProps{
		Email:      v.State.Email,
		EmailValid: v.State.EmailValid(),
		Submitted:  v.State.Submitted,
		CSRFToken:  v.CSRFToken,
		HTMX:       v.HTMX,
	}
}

// PricingProps derives the pricing section props from the view state
func (v LandingView) PricingProps() components.PricingProps {
	return components.PricingProps{
		Selected:  v.State.SelectedPlan,
		CSRFToken: v.CSRFToken,
		HTMX:      v.HTMX,
	}
}

// Landing is the root of the page: nav, hero, features, pricing, final CTA, footer
func Landing(ctx context.Context, v LandingView) g.Node {
	clock := v.Clock
	if clock == nil {
		clock = services.SystemClock{}
	}
	subscribe := v.SubscribeProps()
	args := map[string]interface{}{"brand": v.Brand}

	return components.Layout(ctx,
		components.PageConfig{
			Title:       i18n.T(ctx, "meta.title", args),
			Description: i18n.T(ctx, "meta.description"),
			CSRFToken:   v.CSRFToken,
			HTMX:        v.HTMX,
		},
		components.NavBar(ctx, v.Brand),
		Main(
			components.Hero(ctx, subscribe),
			components.Features(ctx),
			components.Pricing(ctx, v.PricingProps()),
			components.FinalCTA(ctx, subscribe),
		),
		components.PageFooter(ctx, clock, v.Brand),
	)
}
