package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func LandingTopbar(registerRoute string) g.Node {
	links := []struct {
		Href  string
		Label string
	}{
		{"#features", "Features"},
		{"#showcase", "How it works"},
		{"#pricing", "Pricing"},
		{"#testimonials", "Reviews"},
	}

	return Div(
		Class("sticky top-0 z-50 bg-base-100/80 backdrop-blur border-b border-base-300"),
		Div(
			Class("container flex justify-between items-center py-3"),
			A(Href("/"), Logo()),
			Ul(
				Class("hidden lg:inline-flex gap-2 menu menu-horizontal"),
				g.Group(g.Map(links, func(l struct {
					Href  string
					Label string
				}) g.Node {
					return Li(A(Href(l.Href), g.Text(l.Label)))
				})),
			),
			A(
				Href(registerRoute),
				Class("btn btn-ghost btn-sm"),
				g.Text("Sign in"),
			),
		),
	)
}
