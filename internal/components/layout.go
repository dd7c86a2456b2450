package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	Theme       string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Theme == "" {
		config.Theme = "pawpal-light"
	}

	if config.Title == "" {
		config.Title = "PawPal - Care for every paw"
	}

	if config.Description == "" {
		config.Description = "Walk tracking, health records and trusted carers for your pet, all in one app."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", config.Theme),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("icon"), Href("/static/images/favicon.svg")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("bg-base-100 text-base-content"),
				g.Group(content),

				Script(Type("module"), Src("/static/js/intent.js")),
			),
		),
	})
}
