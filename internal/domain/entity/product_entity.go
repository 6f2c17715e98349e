package entity

import "time"

// Product is the catalog aggregate root. Category/Size/Color are populated on
// reads that eager-load relations; Images is owned exclusively by the product
// and is replaced wholesale on update, never diffed.
type Product struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"storeId"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	CategoryID string    `json:"categoryId"`
	ColorID    string    `json:"colorId"`
	SizeID     string    `json:"sizeId"`
	IsFeatured bool      `json:"isFeatured"`
	IsArchived bool      `json:"isArchived"`
	Images     []Image   `json:"images"`
	Category   *Category `json:"category,omitempty"`
	Size       *Size     `json:"size,omitempty"`
	Color      *Color    `json:"color,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Image is one entry of a product's ordered image collection. Ordering follows
// submission order and is kept in storage, not on the wire.
type Image struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
