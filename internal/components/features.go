package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Priya8975/pawpal-landing/internal/content"
)

func Features(features []content.Feature) g.Node {
	return Div(
		Class("py-12 md:py-16 container"),
		ID("features"),

		Div(
			Class("text-center"),
			IconBadge("lucide--sparkles", "primary"),
			H2(Class("mt-4 font-semibold text-2xl sm:text-3xl"), g.Text("Everything your pet needs")),
			P(
				Class("inline-block mt-3 max-w-2xl max-sm:text-sm text-base-content/70"),
				g.Text("One place for the walks, the vet visits and the people who look after your pet."),
			),
		),

		Div(
			Class("gap-6 grid grid-cols-1 md:grid-cols-3 mt-12"),
			g.Group(g.Map(features, func(f content.Feature) g.Node {
				return Div(
					Class("border border-base-300 card"),
					Div(
						Class("card-body"),
						IconBadge(f.Icon, f.Color),
						H3(Class("mt-4 font-semibold text-xl"), g.Text(f.Title)),
						P(Class("mt-2 text-sm text-base-content/80 leading-relaxed"), g.Text(f.Description)),
					),
				)
			})),
		),
	)
}
