package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ashchan-dev/ashchan/internal/api"
	"github.com/ashchan-dev/ashchan/internal/domain"
	mw "github.com/ashchan-dev/ashchan/internal/middleware"
	"github.com/ashchan-dev/ashchan/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	ip, err := mw.GetIP(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	creation := domain.ThreadCreationData{
		Board:    board,
		Subject:  body.Subject,
		Name:     body.Name,
		Text:     body.Text,
		ImageURL: body.ImageURL,
		Password: body.Password,
		IP:       ip,
	}

	threadId, err := h.thread.Create(creation)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreateThreadResponse{Id: int64(threadId)})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadIdStr := mux.Vars(r)["thread"]
	threadId, err := parseIntParam(threadIdStr, "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	thread, err := h.thread.Get(domain.ThreadId(threadId))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := api.ThreadResponse{Thread: *thread}
	writeJSON(w, http.StatusOK, response)
}
