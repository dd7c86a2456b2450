package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Priya8975/pawpal-landing/internal/content"
)

func Testimonials(items []content.Testimonial) g.Node {
	return Div(
		Class("py-12 md:py-16 container"),
		ID("testimonials"),

		H2(Class("text-center font-semibold text-2xl sm:text-3xl"), g.Text("Loved by owners")),

		Div(
			Class("mt-12 grid grid-cols-1 md:grid-cols-3 gap-6"),
			g.Group(g.Map(items, func(t content.Testimonial) g.Node {
				return Div(
					Class("card bg-base-200"),
					Div(
						Class("card-body"),
						Span(
							Class("text-warning"),
							g.Attr("role", "img"),
							g.Attr("aria-label", fmt.Sprintf("%d out of 5", t.Rating)),
							g.Text(stars(t.Rating)),
						),
						P(Class("mt-2 italic"), g.Text("“"+t.Quote+"”")),
						P(
							Class("mt-4 text-sm"),
							Span(Class("font-semibold"), g.Text(t.Author)),
							Span(Class("text-base-content/60"), g.Text(", "+t.Role)),
						),
					),
				)
			})),
		),
	)
}

func stars(rating int) string {
	rating = max(0, min(rating, 5))
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
