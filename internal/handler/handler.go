package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ashchan-dev/ashchan/internal/config"
	"github.com/ashchan-dev/ashchan/internal/domain"
	"github.com/ashchan-dev/ashchan/internal/logger"
	"github.com/ashchan-dev/ashchan/internal/service"
)

// HealthChecker reports whether the backing storage is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// StatsProvider returns sitewide counters for the stats endpoint.
type StatsProvider interface {
	Stats() (domain.Stats, error)
}

type Handler struct {
	board  service.BoardService
	thread service.ThreadService
	post   service.PostService
	stats  StatsProvider
	health HealthChecker
	cfg    *config.Config
}

func New(board service.BoardService, thread service.ThreadService, post service.PostService, stats StatsProvider, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{board, thread, post, stats, health, cfg}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already sent, nothing left to do for the client
		logger.Log.Error("failed to encode response body", "error", err)
	}
}
