package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Priya8975/pawpal-landing/internal/content"
)

// Showcase renders the tab strip and only the block of the active tab.
// Tabs are plain links so switching works without JavaScript.
func Showcase(tabs []content.ShowcaseTab, active content.ShowcaseTab) g.Node {
	return Div(
		Class("py-12 md:py-16 container"),
		ID("showcase"),

		Div(
			g.Attr("role", "tablist"),
			Class("tabs tabs-boxed justify-center"),
			g.Group(g.Map(tabs, func(t content.ShowcaseTab) g.Node {
				selected := t.ID == active.ID
				classes := "tab gap-2"
				if selected {
					classes += " tab-active"
				}
				return A(
					g.Attr("role", "tab"),
					g.Attr("aria-selected", boolAttr(selected)),
					Href("/?tab="+t.ID+"#showcase"),
					Class(classes),
					Icon(t.Icon+" size-4", ""),
					g.Text(t.Label),
				)
			})),
		),

		Div(
			g.Attr("role", "tabpanel"),
			g.Attr("data-tab", active.ID),
			Class("mt-10 grid md:grid-cols-2 gap-8 items-center"),
			Div(
				H3(Class("font-semibold text-2xl"), g.Text(active.Heading)),
				P(Class("mt-3 text-base-content/80"), g.Text(active.Body)),
			),
			Ul(
				Class("space-y-3"),
				g.Group(g.Map(active.Bullets, func(b string) g.Node {
					return Li(
						Class("flex items-center gap-2"),
						Icon("lucide--badge-check size-5 text-success", ""),
						g.Text(b),
					)
				})),
			),
		),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
