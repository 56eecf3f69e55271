package model

import "time"

// Experience is one work-history entry.
//
// EndDate is a pointer: nil means the position is ongoing ("current"),
// which is distinct from any zero date the client could send. The column
// is nullable in the store for the same reason.
type Experience struct {
	ID               string     `json:"_id"`
	Title            string     `json:"title"`
	Company          string     `json:"company"`
	StartDate        time.Time  `json:"startDate"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	Responsibilities StringList `json:"responsibilities"`
	Technologies     StringList `json:"technologies"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
