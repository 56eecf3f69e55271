// Package model defines the data structures used throughout the application.
//
// All entities are flat records with an opaque string ID and
// store-assigned timestamps. JSON field names follow the contract the
// admin SPA already speaks: IDs serialize as "_id" and fields are
// camelCase.
package model

import "time"

// User is an admin account. There is no role system — holding any valid
// account grants full write access through the auth gate.
//
// PasswordHash never leaves the server: the json:"-" tag excludes it from
// every response, and the auth middleware strips it again when attaching
// the resolved identity to the request context.
type User struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
