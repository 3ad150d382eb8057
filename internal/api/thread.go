package api

import (
	"github.com/ashchan-dev/ashchan/internal/domain"
)

// Request DTOs

type CreateThreadRequest struct {
	Subject  string `json:"subject,omitempty"`
	Name     string `json:"name,omitempty"`
	Text     string `json:"text" validate:"required"`
	Password string `json:"password,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Response DTOs

// ThreadMetadataResponse wraps thread metadata
type ThreadMetadataResponse struct {
	domain.ThreadMetadata
	// Add extra API-specific fields here if needed in the future
}

// ThreadResponse wraps a full thread with posts
type ThreadResponse struct {
	domain.Thread
	// Add extra API-specific fields here if needed in the future
}

// CreateThreadResponse returns the ID of the created thread
type CreateThreadResponse struct {
	Id int64 `json:"id"`
}
