package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusCooking   = "cooking"
	OrderStatusCompleted = "completed"
)

var OrderStatuses = []string{OrderStatusPending, OrderStatusCooking, OrderStatusCompleted}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Order struct {
	ID          int64       `json:"id"`
	TableNumber int         `json:"tableNumber"`
	Items       []OrderItem `json:"items"`
	Status      string      `json:"status"`
	TotalPrice  float64     `json:"totalPrice"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// OrderItem is a copy of the menu row taken when the order was placed.
type OrderItem struct {
	MenuID   int64   `json:"menuId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Note     string  `json:"note"`
}

type OrderFilter struct {
	Status      string
	TableNumber *int
}

type OrderItemRequest struct {
	MenuID   int64  `json:"menuId"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note"`
}

type CreateOrderRequest struct {
	TableNumber int                `json:"tableNumber"`
	Items       []OrderItemRequest `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
