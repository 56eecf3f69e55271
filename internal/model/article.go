package model

import "time"

// Article links out to a post published on Medium. MediumURL is unique —
// the same post can't be listed twice.
type Article struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	MediumURL string    `json:"mediumUrl"`
	ImageURL  string    `json:"imageUrl"`
	Excerpt   string    `json:"excerpt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
