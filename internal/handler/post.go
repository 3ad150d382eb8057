package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ashchan-dev/ashchan/internal/api"
	"github.com/ashchan-dev/ashchan/internal/domain"
	mw "github.com/ashchan-dev/ashchan/internal/middleware"
	"github.com/ashchan-dev/ashchan/internal/utils"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	threadIdStr := mux.Vars(r)["thread"]
	threadId, err := parseIntParam(threadIdStr, "thread ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.CreatePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	ip, err := mw.GetIP(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	creation := domain.PostCreationData{
		Thread:   domain.ThreadId(threadId),
		Name:     body.Name,
		Text:     body.Text,
		ImageURL: body.ImageURL,
		Password: body.Password,
		IP:       ip,
	}

	postId, replyCount, err := h.post.Create(creation)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreatePostResponse{Id: int64(postId), ReplyCount: replyCount})
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postIdStr := mux.Vars(r)["post"]
	postId, err := parseIntParam(postIdStr, "post ID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body api.DeletePostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.post.Delete(domain.PostId(postId), body.Password); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetRecentPosts(w http.ResponseWriter, r *http.Request) {
	limit := h.cfg.Public.RecentPostsDefault
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := parseIntParam(limitStr, "limit")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	if limit > h.cfg.Public.RecentPostsMax {
		limit = h.cfg.Public.RecentPostsMax
	}

	posts, err := h.post.Recent(limit)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.RecentPostsResponse{Posts: posts})
}
