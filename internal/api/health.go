package api

import (
	"net/http"
)

// Version is reported by the health endpoint; overridden at build time.
var Version = "dev"

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HealthHandler returns the health check handler.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{
			Status:  "healthy",
			Version: Version,
		})
	}
}
