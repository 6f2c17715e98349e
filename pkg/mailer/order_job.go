package mailer

import (
	"fmt"
	"strings"
	"time"
)

// OrderJob is the JSON payload put on the RabbitMQ queue when checkout creates
// an order. The worker turns it into a notification mail for the store owner's
// configured address.
type OrderJob struct {
	OrderID    string    `json:"orderId"`
	StoreID    string    `json:"storeId"`
	ProductIDs []string  `json:"productIds"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Subject is the notification mail subject line.
func (j OrderJob) Subject() string {
	return fmt.Sprintf("New order %s", j.OrderID)
}

// Text renders the plain-text notification body.
func (j OrderJob) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "A new order was placed in store %s.\n\n", j.StoreID)
	fmt.Fprintf(&b, "Order: %s\n", j.OrderID)
	fmt.Fprintf(&b, "Placed at: %s\n", j.CreatedAt.UTC().Format(time.RFC1123))
	fmt.Fprintf(&b, "Items (%d):\n", len(j.ProductIDs))
	for _, id := range j.ProductIDs {
		fmt.Fprintf(&b, "  - product %s\n", id)
	}
	b.WriteString("\nThe order is awaiting payment confirmation.\n")
	return b.String()
}
