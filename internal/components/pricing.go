package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Priya8975/pawpal-landing/internal/content"
	"github.com/Priya8975/pawpal-landing/internal/domain"
)

// PlanAction is the form target of a plan's purchase button.
func PlanAction(planID string) string {
	return "/intent/plans/" + planID
}

// PlanControl is the busy-state id of a plan's purchase button.
func PlanControl(planID string) string {
	return domain.ControlID(domain.SurfacePricing, planID)
}

// Pricing renders one card per plan. busy is keyed by control id; only the
// listed controls render disabled.
func Pricing(plans []content.Plan, busy map[string]bool) g.Node {
	return Div(
		Class("py-12 md:py-16 container"),
		ID("pricing"),

		Div(
			Class("text-center"),
			IconBadge("lucide--tag", "secondary"),
			H2(Class("mt-4 font-semibold text-2xl sm:text-3xl"), g.Text("Simple pricing")),
			P(Class("mt-3 text-base-content/70"), g.Text("Start free for 14 days. No card needed.")),
		),

		Div(
			Class("mt-12 grid grid-cols-1 md:grid-cols-2 gap-6 max-w-4xl mx-auto"),
			g.Group(g.Map(plans, func(p content.Plan) g.Node {
				return planCard(p, busy[PlanControl(p.ID)])
			})),
		),
	)
}

func planCard(p content.Plan, busy bool) g.Node {
	cardClass := "card border border-base-300"
	buttonClass := "btn btn-outline w-full"
	if p.Featured {
		cardClass = "card border-2 border-primary shadow-xl"
		buttonClass = "btn btn-primary w-full"
	}

	return Div(
		Class(cardClass),
		g.Attr("data-plan", p.ID),
		Div(
			Class("card-body"),
			Div(
				Class("flex items-center justify-between"),
				H3(Class("font-semibold text-xl"), g.Text(p.Name)),
				g.If(p.Featured, Span(Class("badge badge-primary"), g.Text("Best value"))),
			),
			P(
				Class("mt-2"),
				Span(Class("text-4xl font-bold"), g.Text(content.FormatPrice(p.PriceCents))),
				Span(Class("text-base-content/60"), g.Text(" / "+p.Period)),
			),
			P(Class("mt-2 text-sm text-base-content/70"), g.Text(p.Description)),
			Ul(
				Class("mt-4 space-y-2 text-sm"),
				g.Group(g.Map(p.Highlights, func(h string) g.Node {
					return Li(
						Class("flex items-center gap-2"),
						Icon("lucide--check size-4 text-success", ""),
						g.Text(h),
					)
				})),
			),
			Div(
				Class("card-actions mt-6"),
				IntentButton(PlanAction(p.ID), PlanControl(p.ID), buttonClass, busy,
					g.Textf("Choose %s", p.Name),
				),
			),
		),
	)
}
