package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Icon("lucide--paw-print size-6 text-primary", ""),
		Span(
			Class("font-bold text-xl"),
			g.Text("PawPal"),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify glyph. iconClass is "set--name" optionally
// followed by extra classes.
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	classes := "iconify inline-block"
	if sizeClasses := extractSizeClasses(iconClass); sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon, color string) g.Node {
	containerClass := fmt.Sprintf("inline-flex items-center justify-center shrink-0 select-none size-8 rounded-box bg-%s/10 border border-%s/20", color, color)

	return Span(
		Class(containerClass),
		Span(
			Class(fmt.Sprintf("iconify text-%s size-4", color)),
			g.Attr("data-icon", convertIconName(icon)),
		),
	)
}

// IntentButton renders a purchase control: a form posting to action whose
// submit button is tagged with its control id. A busy control renders
// disabled with its spinner visible.
func IntentButton(action, control, classes string, busy bool, children ...g.Node) g.Node {
	spinner := "loading loading-spinner loading-sm"
	if !busy {
		spinner += " hidden"
	}

	return Form(
		Method("post"),
		Action(action),
		Class("intent-form"),
		Button(
			Type("submit"),
			Class(classes),
			g.Attr("data-control", control),
			g.If(busy, Disabled()),
			g.If(busy, g.Attr("aria-busy", "true")),
			Span(Class(spinner), g.Attr("aria-hidden", "true")),
			g.Group(children),
		),
	)
}
