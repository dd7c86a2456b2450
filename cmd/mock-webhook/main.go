package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/Priya8975/pawpal-landing/internal/domain"
)

var requestCount atomic.Int64

// intentPayload mirrors the purchase intent body. Exactly one of Action and
// Package is set.
type intentPayload struct {
	Action    string `json:"action"`
	Package   string `json:"package"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	UserAgent string `json:"userAgent"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	port := "9090"
	if p := os.Getenv("PORT"); p != "" {
		port = p
	}

	mux := http.NewServeMux()

	// Successful endpoint: always returns 200
	mux.HandleFunc("POST /webhook/success", func(w http.ResponseWriter, r *http.Request) {
		count := requestCount.Add(1)
		logRequest(logger, r, count, http.StatusOK)

		writeJSON(w, http.StatusOK, map[string]string{"status": "received"})
	})

	// Slow endpoint: delays 3 seconds before responding
	mux.HandleFunc("POST /webhook/slow", func(w http.ResponseWriter, r *http.Request) {
		count := requestCount.Add(1)
		time.Sleep(3 * time.Second)
		logRequest(logger, r, count, http.StatusOK)

		writeJSON(w, http.StatusOK, map[string]string{"status": "received (slow)"})
	})

	// Failing endpoint: always returns 500
	mux.HandleFunc("POST /webhook/fail", func(w http.ResponseWriter, r *http.Request) {
		count := requestCount.Add(1)
		logRequest(logger, r, count, http.StatusInternalServerError)

		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	})

	// Stats endpoint: shows request count
	mux.HandleFunc("GET /stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int64{"total_requests": requestCount.Load()})
	})

	logger.Info("mock webhook server starting",
		"port", port,
		"routes", []string{
			"POST /webhook/success -> 200",
			"POST /webhook/slow -> 200 after 3s",
			"POST /webhook/fail -> 500",
			"GET /stats",
		},
	)

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func logRequest(logger *slog.Logger, r *http.Request, count int64, status int) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 4096))
	if err != nil {
		logger.Warn("failed to read body", "request", count, "error", err)
		return
	}

	var p intentPayload
	if err := json.Unmarshal(body, &p); err != nil {
		logger.Warn("malformed payload", "request", count, "error", err, "body", string(body))
		return
	}

	if _, err := time.Parse(domain.ISO8601Millis, p.Timestamp); err != nil {
		logger.Warn("unexpected timestamp format", "request", count, "timestamp", p.Timestamp)
	}

	logger.Info("purchase intent",
		"request", count,
		"path", r.URL.Path,
		"status", status,
		"action", p.Action,
		"package", p.Package,
		"source", p.Source,
		"timestamp", p.Timestamp,
		"user_agent", truncate(p.UserAgent, 40),
		"sig", truncate(r.Header.Get("X-Webhook-Signature"), 16),
	)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
