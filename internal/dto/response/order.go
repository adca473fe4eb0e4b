package response

import (
	"time"

	"github.com/christine-ng23/bookstore-backend/internal/data/entity"
)

type OrderResponse struct {
	ID        int64               `json:"id"`
	UserID    int64               `json:"user_id"`
	Status    string              `json:"status"`
	CreatedAt string              `json:"created_at"`
	Items     []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"order_id"`
	BookID    int64   `json:"book_id"`
	Quantity  int     `json:"quantity"`
	PriceEach float64 `json:"price_each"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			OrderID:   item.OrderID,
			BookID:    item.BookID,
			Quantity:  item.Quantity,
			PriceEach: item.PriceEach,
		}
	}

	return OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
		Items:     items,
	}
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = OrderToResponse(order)
	}
	return responses
}
