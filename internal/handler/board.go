package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ashchan-dev/ashchan/internal/api"
	"github.com/ashchan-dev/ashchan/internal/utils"
)

func (h *Handler) GetBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.board.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// Convert to response DTOs (metadata only for list view)
	boardMetadata := make([]api.BoardMetadataResponse, len(boards))
	for i, board := range boards {
		boardMetadata[i] = api.BoardMetadataResponse{BoardMetadata: board}
	}

	response := api.BoardListResponse{Boards: boardMetadata}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["board"]

	board, err := h.board.Get(code)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.BoardResponse{Board: *board}
	writeJSON(w, http.StatusOK, response)
}
