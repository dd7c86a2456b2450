package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter() g.Node {
	return Div(
		Class("border-t border-base-300"),
		Div(
			Class("container py-10 grid grid-cols-2 md:grid-cols-4 gap-6"),
			Div(
				Class("col-span-2"),
				Logo(),
				P(Class("mt-3 max-sm:text-sm text-base-content/80"), g.Text("Walks, health and trusted carers for the pets you love.")),
			),
			Div(
				P(Class("font-medium"), g.Text("Product")),
				Div(
					Class("flex flex-col space-y-1.5 mt-4 text-base-content/80"),
					A(Href("#features"), g.Text("Features")),
					A(Href("#pricing"), g.Text("Pricing")),
					A(Href("#testimonials"), g.Text("Reviews")),
				),
			),
			Div(
				P(Class("font-medium"), g.Text("Company")),
				Div(
					Class("flex flex-col space-y-1.5 mt-4 text-base-content/80"),
					A(Href("#"), g.Text("About")),
					A(Href("#"), g.Text("Privacy")),
					A(Href("#"), g.Text("Support")),
				),
			),
		),
		P(
			Class("container pb-8 text-sm text-base-content/60"),
			g.Text(fmt.Sprintf("© %d PawPal. All rights reserved.", time.Now().Year())),
		),
	)
}
