package entity

import "time"

// Order is created unpaid by the public checkout flow; payment settlement
// happens out of process and flips IsPaid through a separate channel.
type Order struct {
	ID         string      `json:"id"`
	StoreID    string      `json:"storeId"`
	IsPaid     bool        `json:"isPaid"`
	OrderItems []OrderItem `json:"orderItems"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// OrderItem links an order to one purchased product. Checkout keeps duplicate
// product ids as duplicate items.
type OrderItem struct {
	ID        string   `json:"id"`
	OrderID   string   `json:"orderId"`
	ProductID string   `json:"productId"`
	Product   *Product `json:"product,omitempty"`
}
