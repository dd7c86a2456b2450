package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Priya8975/pawpal-landing/internal/content"
	"github.com/Priya8975/pawpal-landing/internal/domain"
	"github.com/Priya8975/pawpal-landing/internal/notifier"
	"github.com/Priya8975/pawpal-landing/internal/session"
	"github.com/go-chi/chi/v5"
)

// IntentNotifier is the part of notifier.Notifier the handlers use.
type IntentNotifier interface {
	NotifyAndProceed(ctx context.Context, req notifier.Request, nav notifier.Navigator) notifier.Result
}

type IntentHandler struct {
	notifier      IntentNotifier
	catalog       *content.Catalog
	registerRoute string
}

func NewIntentHandler(n IntentNotifier, catalog *content.Catalog, registerRoute string) *IntentHandler {
	return &IntentHandler{notifier: n, catalog: catalog, registerRoute: registerRoute}
}

// redirectNavigator navigates a plain form post with 303 See Other.
type redirectNavigator struct {
	w http.ResponseWriter
	r *http.Request
}

func (n redirectNavigator) Navigate(route string) {
	http.Redirect(n.w, n.r, route, http.StatusSeeOther)
}

// routeNavigator remembers the route for callers that navigate themselves.
type routeNavigator struct {
	route string
}

func (n *routeNavigator) Navigate(route string) {
	n.route = route
}

func (h *IntentHandler) request(r *http.Request, surface domain.Surface, label string) notifier.Request {
	return notifier.Request{
		Surface:     surface,
		Label:       label,
		TargetRoute: h.registerRoute,
		UserAgent:   r.UserAgent(),
		ClientID:    session.ClientID(r),
	}
}

// CTA handles the generic get-started form.
func (h *IntentHandler) CTA(w http.ResponseWriter, r *http.Request) {
	req := h.request(r, domain.SurfaceCTA, domain.CTAAction)
	h.notifier.NotifyAndProceed(r.Context(), req, redirectNavigator{w: w, r: r})
}

// Plan handles a pricing card's purchase form.
func (h *IntentHandler) Plan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "plan")
	if _, ok := h.catalog.Plan(planID); !ok {
		respondError(w, http.StatusNotFound, domain.ErrUnknownPlan.Error())
		return
	}

	req := h.request(r, domain.SurfacePricing, planID)
	h.notifier.NotifyAndProceed(r.Context(), req, redirectNavigator{w: w, r: r})
}

type createIntentRequest struct {
	Surface string `json:"surface"`
	Label   string `json:"label,omitempty"`
}

type createIntentResponse struct {
	Redirect string `json:"redirect"`
}

// Create is the script-driven variant: the browser keeps its own busy
// state and follows the returned redirect.
func (h *IntentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	surface, ok := domain.SurfaceByName(body.Surface)
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown surface")
		return
	}

	label := body.Label
	switch surface {
	case domain.SurfaceCTA:
		label = domain.CTAAction
	case domain.SurfacePricing:
		if label == "" {
			respondError(w, http.StatusBadRequest, "label is required")
			return
		}
		if _, ok := h.catalog.Plan(label); !ok {
			respondError(w, http.StatusNotFound, domain.ErrUnknownPlan.Error())
			return
		}
	}

	nav := &routeNavigator{}
	h.notifier.NotifyAndProceed(r.Context(), h.request(r, surface, label), nav)

	respondJSON(w, http.StatusOK, createIntentResponse{Redirect: nav.route})
}
