package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/Priya8975/pawpal-landing/internal/content"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestShowcase_RendersOnlyActiveTab(t *testing.T) {
	c := content.Default()

	for _, tab := range c.Tabs {
		t.Run(tab.ID, func(t *testing.T) {
			html := render(t, Showcase(c.Tabs, c.Tab(tab.ID)))

			assert.Contains(t, html, tab.Heading)
			assert.Contains(t, html, `data-tab="`+tab.ID+`"`)
			for _, other := range c.Tabs {
				if other.ID == tab.ID {
					continue
				}
				assert.NotContains(t, html, other.Heading)
				assert.Contains(t, html, "/?tab="+other.ID, "tab strip should still link to %s", other.ID)
			}
			assert.Equal(t, 1, strings.Count(html, `aria-selected="true"`))
		})
	}
}

func TestPricing_BusyIsPerPlan(t *testing.T) {
	c := content.Default()

	html := render(t, Pricing(c.Plans, map[string]bool{PlanControl("monthly"): true}))

	monthly := buttonFor(t, html, PlanControl("monthly"))
	annual := buttonFor(t, html, PlanControl("annual"))

	assert.Contains(t, monthly, "disabled")
	assert.Contains(t, monthly, `aria-busy="true"`)
	assert.NotContains(t, annual, "disabled")
	assert.NotContains(t, annual, "aria-busy")

	assert.Contains(t, html, `action="/intent/plans/monthly"`)
	assert.Contains(t, html, `action="/intent/plans/annual"`)
	assert.Contains(t, html, "$9.99")
}

// buttonFor returns the opening tag of the button carrying control.
func buttonFor(t *testing.T, html, control string) string {
	t.Helper()
	marker := `data-control="` + control + `"`
	i := strings.Index(html, marker)
	require.NotEqual(t, -1, i, "no button for %s", control)
	start := strings.LastIndex(html[:i], "<button")
	end := strings.Index(html[i:], ">")
	return html[start : i+end+1]
}

func TestCTA_IdleAndBusy(t *testing.T) {
	idle := render(t, CTA(false))
	assert.Contains(t, idle, `action="/intent/cta"`)
	assert.NotContains(t, buttonFor(t, idle, "cta"), "disabled")

	busy := render(t, CTA(true))
	assert.Contains(t, buttonFor(t, busy, "cta"), "disabled")
}

func TestIcon(t *testing.T) {
	html := render(t, Icon("lucide--paw-print size-5", "Paw"))
	assert.Contains(t, html, `data-icon="lucide:paw-print"`)
	assert.Contains(t, html, `class="iconify inline-block size-5"`)
	assert.Contains(t, html, `aria-label="Paw"`)

	decorative := render(t, Icon("lucide--check", ""))
	assert.Contains(t, decorative, `aria-hidden="true"`)
}

func TestTestimonials_Stars(t *testing.T) {
	assert.Equal(t, "★★★★☆", stars(4))
	assert.Equal(t, "☆☆☆☆☆", stars(-2))
	assert.Equal(t, "★★★★★", stars(9))

	html := render(t, Testimonials(content.Default().Testimonials))
	assert.Contains(t, html, "Maya R.")
}

func TestLayout_Document(t *testing.T) {
	html := render(t, Layout(PageConfig{}, RegisterScreen()))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>PawPal - Care for every paw</title>")
	assert.Contains(t, html, "/static/js/intent.js")
	assert.Contains(t, html, "Create your owner account")
}
