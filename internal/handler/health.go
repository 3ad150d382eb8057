package handler

import (
	"context"
	"net/http"
	"time"
)

// readyProbeTimeout bounds the readiness ping so a wedged connection pool
// cannot hang the probe.
const readyProbeTimeout = 2 * time.Second

// Health is the liveness probe: 200 whenever the process serves requests.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Ready is the readiness probe: 200 when the database answers a ping,
// 503 otherwise.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyProbeTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("database unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
