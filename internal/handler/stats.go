package handler

import (
	"net/http"

	"github.com/ashchan-dev/ashchan/internal/api"
	"github.com/ashchan-dev/ashchan/internal/utils"
)

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Stats()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.StatsResponse{Stats: stats})
}
