package api

import (
	"github.com/ashchan-dev/ashchan/internal/domain"
)

// Request DTOs

type CreatePostRequest struct {
	Name     string `json:"name,omitempty"`
	Text     string `json:"text" validate:"required"`
	Password string `json:"password,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type DeletePostRequest struct {
	Password string `json:"password" validate:"required"`
}

// Response DTOs

// CreatePostResponse returns the ID of the created post and the updated reply count
type CreatePostResponse struct {
	Id         int64 `json:"id"`
	ReplyCount int   `json:"reply_count"`
}

// RecentPostsResponse wraps the sitewide recent posts feed
type RecentPostsResponse struct {
	Posts []domain.Post `json:"posts"`
}
