package entity

import (
	"sort"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipping   OrderStatus = "shipping"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"
	OrderStatusRejected   OrderStatus = "rejected"
)

// orderTransitions is the fixed directed transition graph. Delivered,
// canceled and rejected are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusNew:        {OrderStatusProcessing, OrderStatusCanceled, OrderStatusRejected},
	OrderStatusProcessing: {OrderStatusShipping, OrderStatusRejected},
	OrderStatusShipping:   {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCanceled:   {},
	OrderStatusRejected:   {},
}

// ValidOrderStatus reports whether status is in the closed status set.
func ValidOrderStatus(status string) bool {
	_, ok := orderTransitions[OrderStatus(status)]
	return ok
}

// CanTransitionTo reports whether the transition graph allows moving from s
// to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderStatusList returns all statuses sorted by name, for stable error
// messages.
func OrderStatusList() string {
	statuses := make([]string, 0, len(orderTransitions))
	for status := range orderTransitions {
		statuses = append(statuses, string(status))
	}
	sort.Strings(statuses)
	return strings.Join(statuses, ", ")
}

type Order struct {
	ID        int64       `db:"id"`
	UserID    int64       `db:"user_id"`
	Status    OrderStatus `db:"status"`
	CreatedAt time.Time   `db:"created_at"`
	Items     []OrderItem
}

// OrderItem snapshots the book sell price at order time; rows are immutable
// once created.
type OrderItem struct {
	ID        int64   `db:"id"`
	OrderID   int64   `db:"order_id"`
	BookID    int64   `db:"book_id"`
	Quantity  int     `db:"quantity"`
	PriceEach float64 `db:"price_each"`
}
