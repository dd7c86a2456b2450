package api

import (
	"log/slog"
	"net/http"

	"github.com/Priya8975/pawpal-landing/internal/components"
	"github.com/Priya8975/pawpal-landing/internal/content"
	"github.com/Priya8975/pawpal-landing/internal/notifier"
	"github.com/Priya8975/pawpal-landing/internal/session"
	g "maragu.dev/gomponents"
)

type PageHandler struct {
	catalog       *content.Catalog
	busy          notifier.BusyStore
	registerRoute string
	logger        *slog.Logger
}

func NewPageHandler(catalog *content.Catalog, busy notifier.BusyStore, registerRoute string, logger *slog.Logger) *PageHandler {
	return &PageHandler{catalog: catalog, busy: busy, registerRoute: registerRoute, logger: logger}
}

// Landing renders the marketing page. ?tab= selects the showcase block.
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	busy := h.busyControls(r)

	page := components.Layout(
		components.PageConfig{},
		components.LandingTopbar(h.registerRoute),
		components.Hero(busy[components.CTAControl]),
		components.Features(h.catalog.Features),
		components.Showcase(h.catalog.Tabs, h.catalog.Tab(r.URL.Query().Get("tab"))),
		components.Pricing(h.catalog.Plans, busy),
		components.Testimonials(h.catalog.Testimonials),
		components.CTA(busy[components.CTAControl]),
		components.PageFooter(),
	)

	h.render(w, page)
}

// Register renders the owner registration screen.
func (h *PageHandler) Register(w http.ResponseWriter, r *http.Request) {
	page := components.Layout(
		components.PageConfig{Title: "Create your account - PawPal"},
		components.LandingTopbar(h.registerRoute),
		components.RegisterScreen(),
		components.PageFooter(),
	)

	h.render(w, page)
}

// busyControls looks up which of the caller's controls have a notification
// in flight, so a reload mid-call still shows them disabled.
func (h *PageHandler) busyControls(r *http.Request) map[string]bool {
	clientID := session.ClientID(r)
	controls := []string{components.CTAControl}
	for _, p := range h.catalog.Plans {
		controls = append(controls, components.PlanControl(p.ID))
	}

	busy := make(map[string]bool, len(controls))
	for _, control := range controls {
		isBusy, err := h.busy.IsBusy(r.Context(), notifier.BusyKey(clientID, control))
		if err != nil {
			h.logger.Warn("failed to read busy state", "error", err, "control", control)
			continue
		}
		busy[control] = isBusy
	}
	return busy
}

func (h *PageHandler) render(w http.ResponseWriter, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		h.logger.Error("failed to render page", "error", err)
	}
}
