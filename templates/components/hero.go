package components

import (
	"context"

	"pulse_landing/services"
	"pulse_landing/services/i18n"

	"github.com/maragudk/gomponents-heroicons/v2/outline"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Element ids of the two subscribe buttons; htmx swaps them out of band
const (
	HeroSubmitID = "hero-submit"
	CTASubmitID  = "cta-submit"
)

// SubscribeProps is what both subscribe controls need to render
type SubscribeProps struct {
	Email      string
	EmailValid bool
	Submitted  bool
	CSRFToken  string
	HTMX       bool
}

// CanSubmit mirrors the gate enforced by the handlers
func (p SubscribeProps) CanSubmit() bool {
	return p.EmailValid && !p.Submitted
}

// SubmitButton is the subscribe button. Its label and disabled state
// depend only on (EmailValid, Submitted).
func SubmitButton(ctx context.Context, id, size string, p SubscribeProps, oob bool) g.Node {
	style := services.SubmitButtonStyle(p.EmailValid, p.Submitted)

	return styledButton(style, size,
		ID(id),
		Type("submit"),
		g.If(oob, g.Attr("hx-swap-oob", "true")),
		g.Text(i18n.T(ctx, style.LabelKey)),
	)
}

func Hero(ctx context.Context, p SubscribeProps) g.Node {
	return Section(
		Class("container hero"),
		Div(
			Class("grid grid-2"),
			Div(
				Class("stack gap-6"),
				Div(
					Class("stack gap-3"),
					badge(BadgeSubtle, i18n.T(ctx, "hero.badge")),
					H1(g.Text(i18n.T(ctx, "hero.title"))),
					P(Class("lead muted"), g.Text(i18n.T(ctx, "hero.subtitle"))),
				),
				subscribeForm(ctx, p),
				Div(
					Class("row wrap gap-4 subtle"),
					perk(i18n.T(ctx, "hero.perks.no_spam")),
					perk(i18n.T(ctx, "hero.perks.unsubscribe")),
					perk(i18n.T(ctx, "hero.perks.weekly")),
				),
			),
			PreviewCard(ctx),
		),
	)
}

// subscribeForm posts to /subscribe. Typing posts to /email through htmx;
// without htmx, Enter hits the first (hidden) submit button which saves the email.
func subscribeForm(ctx context.Context, p SubscribeProps) g.Node {
	return Form(
		ID("subscribe"),
		Class("panel row gap-3 subscribe"),
		Method("post"),
		Action("/subscribe"),
		g.If(p.HTMX, g.Attr("hx-post", "/subscribe")),
		g.If(p.HTMX, g.Attr("hx-swap", "none")),
		csrfField(p.CSRFToken),
		g.If(!p.HTMX, Button(
			Type("submit"),
			g.Attr("formaction", "/email"),
			Class("visually-hidden"),
			g.Attr("tabindex", "-1"),
			g.Text(i18n.T(ctx, "hero.save_email")),
		)),
		Input(
			ID("email"),
			Class("input"),
			Type("text"),
			Name("email"),
			Value(p.Email),
			Placeholder(i18n.T(ctx, "hero.email_placeholder")),
			AutoComplete("email"),
			g.Attr("inputmode", "email"),
			g.Attr("aria-label", i18n.T(ctx, "hero.email_label")),
			g.If(p.HTMX, g.Attr("hx-post", "/email")),
			g.If(p.HTMX, g.Attr("hx-trigger", "input changed delay:150ms")),
			g.If(p.HTMX, g.Attr("hx-swap", "none")),
		),
		SubmitButton(ctx, HeroSubmitID, SizeFluid, p, false),
	)
}

func perk(text string) g.Node {
	return Span(Class("check"), icon(outline.Check()), g.Text(text))
}
