package router

import (
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/ashchan-dev/ashchan/internal/middleware"
	"github.com/ashchan-dev/ashchan/internal/middleware/metrics"
	rl "github.com/ashchan-dev/ashchan/internal/middleware/ratelimiter"
	"github.com/ashchan-dev/ashchan/internal/setup"
)

// New creates and configures a new mux router with all the routes.
// IMPORTANT! ratelimiters set with .Use limit requests for all endpoints combined in that subrouter
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	r.Use(mw.AccessLog)
	r.Use(metrics.Middleware)

	// Add security headers
	// Backend CSP: strict policy (JSON API only, no scripts/styles needed)
	backendCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(mw.SecurityHeadersWithCSP(false, backendCSP))

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	h := deps.Handler
	cfg := deps.Config.Public

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/healthz", h.Health).Methods("GET")
	v1.HandleFunc("/readyz", h.Ready).Methods("GET")

	v1.HandleFunc("/boards", h.GetBoards).Methods("GET")
	v1.HandleFunc("/boards/{board}", h.GetBoard).Methods("GET")
	v1.HandleFunc("/threads/{thread}", h.GetThread).Methods("GET")
	v1.HandleFunc("/posts/recent", h.GetRecentPosts).Methods("GET")
	v1.HandleFunc("/stats", h.GetStats).Methods("GET")

	// Deletion is gated by the post password, not the rate limiter.
	v1.HandleFunc("/posts/{post}", h.DeletePost).Methods("DELETE")

	// Thread and post creation draw from one shared per-address window.
	limiter := rl.NewFixedWindowLimiter(
		cfg.RateLimitAdmissions,
		time.Duration(cfg.RateLimitWindowSeconds)*time.Second,
		1*time.Hour,
	)
	mutations := v1.NewRoute().Subrouter()
	mutations.Use(mw.RateLimit(limiter, mw.GetIP))
	mutations.HandleFunc("/boards/{board}/threads", h.CreateThread).Methods("POST")
	mutations.HandleFunc("/threads/{thread}/posts", h.CreatePost).Methods("POST")

	return r
}
