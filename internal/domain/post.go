package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
// Password holds the request plaintext; the service swaps it for
// PasswordHash before the data reaches storage.
type PostCreationData struct {
	Thread       ThreadId
	Name         string
	Text         string
	ImageURL     string
	Password     string
	PasswordHash []byte
	IP           string
}

type Post struct {
	Id        PostId    `json:"id"`
	Thread    ThreadId  `json:"thread_id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
