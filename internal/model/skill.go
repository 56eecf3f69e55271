package model

import "time"

// Skill is a single technology shown in the skills grid.
// Names are unique — enforced by the store at write time.
type Skill struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	IconClass string    `json:"iconClass"` // CSS class of the icon, e.g. "devicon-go-plain"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
