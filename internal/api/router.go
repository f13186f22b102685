package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/diamondjirapat/mango-reach-management-mockup/internal/api/recovery"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/services"
)

// RouterOptions carries the HTTP-facing settings of the service config.
type RouterOptions struct {
	CORSOrigins    []string
	MetricsEnabled bool
}

// NewRouter wires the ads routes and middleware. CORS wraps the mux so that
// preflight requests are answered before method matching.
func NewRouter(svc *services.AdService, health HealthReporter, opts RouterOptions, log zerolog.Logger) http.Handler {
	root := mux.NewRouter()
	root.Use(hlog.NewHandler(log), requestID, accessLog(), recovery.Middleware)

	root.HandleFunc("/", Root).Methods("GET")

	ads := NewAdHandler(svc)
	root.HandleFunc("/api/ads", ads.ListAds).Methods("GET")
	root.HandleFunc("/api/ads", ads.CreateAd).Methods("POST")
	root.HandleFunc("/api/dashboard", ads.GetDashboard).Methods("GET")

	healthHandler := NewHealthHandler(health)
	root.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	if opts.MetricsEnabled {
		root.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}

	return withCORS(opts.CORSOrigins)(root)
}
