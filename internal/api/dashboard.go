package api

import (
	"context"
	"net/http"

	"github.com/Priya8975/pawpal-landing/internal/domain"
)

// OutcomeReader exposes the notification outcome counters.
type OutcomeReader interface {
	OutcomeCounts(ctx context.Context) (map[string]map[domain.Outcome]int64, error)
}

// ClientCounter reports connected websocket pages.
type ClientCounter interface {
	ClientCount() int
}

type DashboardHandler struct {
	outcomes OutcomeReader
	hub      ClientCounter
}

func NewDashboardHandler(outcomes OutcomeReader, hub ClientCounter) *DashboardHandler {
	return &DashboardHandler{outcomes: outcomes, hub: hub}
}

type surfaceMetrics struct {
	Success   int64 `json:"success"`
	Failure   int64 `json:"failure"`
	Exception int64 `json:"exception"`
	Skipped   int64 `json:"skipped"`
	Total     int64 `json:"total"`
}

type metricsResponse struct {
	Surfaces         map[string]surfaceMetrics `json:"surfaces"`
	WebSocketClients int                       `json:"websocket_clients"`
}

// Metrics returns notification outcome counts per surface.
func (h *DashboardHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	counts, err := h.outcomes.OutcomeCounts(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to get metrics")
		return
	}

	surfaces := make(map[string]surfaceMetrics, len(counts))
	for surface, byOutcome := range counts {
		m := surfaceMetrics{
			Success:   byOutcome[domain.OutcomeSuccess],
			Failure:   byOutcome[domain.OutcomeFailure],
			Exception: byOutcome[domain.OutcomeException],
			Skipped:   byOutcome[domain.OutcomeSkipped],
		}
		m.Total = m.Success + m.Failure + m.Exception + m.Skipped
		surfaces[surface] = m
	}

	respondJSON(w, http.StatusOK, metricsResponse{
		Surfaces:         surfaces,
		WebSocketClients: h.hub.ClientCount(),
	})
}
