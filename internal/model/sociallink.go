package model

import "time"

// SocialLink is one entry in the footer/social bar. Platform is unique —
// at most one link per platform.
type SocialLink struct {
	ID        string    `json:"_id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	IconClass string    `json:"iconClass"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
