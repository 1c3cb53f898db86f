package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type OrderItem struct {
	ID       int64
	Product  ProductSummary
	Quantity int
	Price    string
}

type Order struct {
	ID        int64
	Status    OrderStatus
	Items     []OrderItem
	Total     string
	CreatedAt time.Time
}

// Cancellable reports whether the order is still in a state the server
// accepts a cancel for.
func (o Order) Cancellable() bool {
	switch o.Status {
	case OrderStatusPending, OrderStatusProcessing:
		return true
	default:
		return false
	}
}
