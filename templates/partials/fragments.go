package partials

import (
	"context"

	"pulse_landing/templates/components"
	"pulse_landing/templates/pages"

	g "maragu.dev/gomponents"
)

// SubscribeButtons re-renders both subscribe buttons as out-of-band swaps.
// It answers every email keystroke and every subscribe attempt.
func SubscribeButtons(ctx context.Context, v pages.LandingView) g.Node {
	p := v.SubscribeProps()
	return g.Group([]g.Node{
		components.SubmitButton(ctx, components.HeroSubmitID, components.SizeFluid, p, true),
		components.SubmitButton(ctx, components.CTASubmitID, components.SizeLg, p, true),
	})
}

// Pricing re-renders the pricing section after a plan is selected
func Pricing(ctx context.Context, v pages.LandingView) g.Node {
	return components.Pricing(ctx, v.PricingProps())
}
