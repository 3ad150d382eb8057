package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
// Password holds the request plaintext; the service swaps it for
// PasswordHash before the data reaches storage.
type ThreadCreationData struct {
	Board        BoardCode
	Subject      string
	Name         string
	Text         string
	ImageURL     string
	Password     string
	PasswordHash []byte
	IP           string
}

type ThreadMetadata struct {
	Id         ThreadId  `json:"id"`
	Board      BoardCode `json:"board"`
	Subject    string    `json:"subject,omitempty"`
	Name       string    `json:"name"`
	Text       string    `json:"text"`
	ImageURL   string    `json:"image_url,omitempty"`
	BumpTime   time.Time `json:"bump_time"`
	CreatedAt  time.Time `json:"created_at"`
	ReplyCount int       `json:"reply_count"`
	IsSticky   bool      `json:"is_sticky"`
	IsLocked   bool      `json:"is_locked"`
}

type Thread struct {
	ThreadMetadata
	Posts []*Post `json:"posts"`
}
