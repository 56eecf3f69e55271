package model

import "time"

// ContactMessage is a message submitted through the public contact form.
// Messages are append-only: created by visitors, read and deleted by the
// admin, never updated.
type ContactMessage struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
