package domain

import (
	"time"
)

type BoardMetadata struct {
	Code        BoardCode `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Board struct {
	BoardMetadata
	Threads []ThreadMetadata `json:"threads"`
}

// DefaultBoards is the fixed seed set. Seeding is insert-if-absent by code,
// so rerunning it against a populated database is a no-op.
var DefaultBoards = []BoardMetadata{
	{Code: "b", Name: "Random", Description: "Anything goes"},
	{Code: "g", Name: "Technology", Description: "Computers, programming, gadgets"},
	{Code: "a", Name: "Anime & Manga", Description: "Japanese animation and comics"},
	{Code: "v", Name: "Video Games", Description: "Gaming discussion"},
	{Code: "mu", Name: "Music", Description: "All genres, all formats"},
	{Code: "fit", Name: "Fitness", Description: "Health, exercise, nutrition"},
	{Code: "diy", Name: "Do It Yourself", Description: "Projects, repairs, crafts"},
	{Code: "sci", Name: "Science & Math", Description: "STEM discussion"},
}
