package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero(ctaBusy bool) g.Node {
	return Div(
		Class("relative overflow-hidden"),
		ID("hero"),

		Div(
			Class("container flex items-center justify-center pt-20 md:pt-28 pb-20 md:pb-28"),
			Div(
				Class("text-center max-w-3xl"),

				Span(Class("badge badge-primary badge-outline"), g.Text("New: live walk tracking")),

				H1(
					Class("mt-4 text-3xl md:text-5xl font-extrabold leading-tight"),
					g.Text("Care for every paw,"),
					Br(),
					Span(Class("text-primary"), g.Text("wherever you are")),
				),

				P(
					Class("mt-5 text-base-content/80 xl:text-lg"),
					g.Text("Track walks, keep health records and book trusted carers in one app built for pet owners."),
				),

				Div(
					Class("mt-8 inline-flex justify-center gap-3"),
					IntentButton(CTAAction, CTAControl, "btn btn-primary shadow-xl", ctaBusy,
						Icon("lucide--sparkles size-4", ""),
						g.Text("Get started free"),
					),
					A(
						Href("#features"),
						Class("btn btn-ghost"),
						Icon("lucide--arrow-down size-4", ""),
						g.Text("Learn more"),
					),
				),
			),
		),
	)
}
