package entity

import "time"

// Store is the tenant boundary: every other aggregate belongs to exactly one
// store, and UserID is the sole authorization key for mutating its contents.
//
// JSON uses the camelCase field names the storefront clients already consume.
type Store struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
