package entity

import "time"

// Category groups products and always references a billboard in the same store.
// Billboard is populated on single-record reads.
type Category struct {
	ID          string     `json:"id"`
	StoreID     string     `json:"storeId"`
	Name        string     `json:"name"`
	BillboardID string     `json:"billboardId"`
	Billboard   *Billboard `json:"billboard,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
