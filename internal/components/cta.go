package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Priya8975/pawpal-landing/internal/domain"
)

// CTAAction is the form target of every get-started button.
const CTAAction = "/intent/cta"

// CTAControl is the busy-state id shared by every get-started button.
var CTAControl = domain.ControlID(domain.SurfaceCTA, domain.CTAAction)

func CTA(busy bool) g.Node {
	benefits := []string{
		"14-day free trial, no card needed",
		"Set up your pet's profile in two minutes",
		"Cancel any time from the app",
	}

	return Div(
		Class("container py-12 md:py-16"),
		ID("get-started"),
		Div(
			Class("rounded-box bg-linear-to-r from-primary to-secondary text-primary-content p-8 md:p-12 text-center"),
			H2(Class("font-bold text-2xl sm:text-3xl lg:text-4xl"), g.Text("Ready to give your pet the best care?")),
			Ul(
				Class("mt-6 space-y-2 inline-block text-left"),
				g.Group(g.Map(benefits, func(benefit string) g.Node {
					return Li(
						Class("flex items-center gap-2"),
						Icon("lucide--badge-check size-5", "Check"),
						g.Text(benefit),
					)
				})),
			),
			Div(
				Class("flex justify-center mt-8"),
				IntentButton(CTAAction, CTAControl, "btn btn-lg bg-base-100 text-base-content border-0", busy,
					Icon("lucide--paw-print size-5", ""),
					g.Text("Get started"),
				),
			),
		),
	)
}
