package entity

import "time"

// Color is a product color option. Value is a hex string and must carry the
// leading '#'; the request validator rejects anything else.
type Color struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
