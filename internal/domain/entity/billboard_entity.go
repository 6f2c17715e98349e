package entity

import "time"

// Billboard is a store's promotional banner. Categories reference billboards,
// so a billboard cannot be deleted while a category still points at it.
type Billboard struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Label     string    `json:"label"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
