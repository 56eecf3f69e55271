package model

import "time"

// Project is a portfolio project card. RepoLink and LiveLink are
// optional; ImageUrl is required so every card renders with an image.
type Project struct {
	ID           string     `json:"_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Technologies StringList `json:"technologies"`
	RepoLink     string     `json:"repoLink,omitempty"`
	LiveLink     string     `json:"liveLink,omitempty"`
	ImageURL     string     `json:"imageUrl"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
