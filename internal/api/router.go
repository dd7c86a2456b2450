package api

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/Priya8975/pawpal-landing/internal/content"
	"github.com/Priya8975/pawpal-landing/internal/notifier"
	"github.com/Priya8975/pawpal-landing/internal/session"
	ws "github.com/Priya8975/pawpal-landing/internal/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Deps holds everything the router wires into handlers.
type Deps struct {
	Catalog       *content.Catalog
	Notifier      IntentNotifier
	Busy          notifier.BusyStore
	Outcomes      OutcomeReader
	Hub           *ws.Hub
	RegisterRoute string
	StaticFS      fs.FS
	Logger        *slog.Logger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(session.Middleware)

	pageHandler := NewPageHandler(d.Catalog, d.Busy, d.RegisterRoute, d.Logger)
	intentHandler := NewIntentHandler(d.Notifier, d.Catalog, d.RegisterRoute)
	dashHandler := NewDashboardHandler(d.Outcomes, d.Hub)

	r.Get("/", pageHandler.Landing)
	r.Get(d.RegisterRoute, pageHandler.Register)

	r.Route("/intent", func(r chi.Router) {
		r.Post("/cta", intentHandler.CTA)
		r.Post("/plans/{plan}", intentHandler.Plan)
	})

	// WebSocket endpoint
	r.Get("/ws", d.Hub.HandleWebSocket)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(corsMiddleware)

		r.Get("/health", HealthHandler())
		r.Post("/intents", intentHandler.Create)
		r.Get("/metrics", dashHandler.Metrics)
	})

	if d.StaticFS != nil {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(d.StaticFS)))
		r.Handle("/static/*", fileServer)
	}

	return r
}

// corsMiddleware adds CORS headers for script clients on other origins.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
