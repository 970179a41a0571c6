package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"table-order/models"
	"table-order/repositories"
)

type OrderService struct {
	orders OrderStore
	menus  MenuStore
}

func NewOrderService(orders OrderStore, menus MenuStore) *OrderService {
	return &OrderService{orders: orders, menus: menus}
}

// Create snapshots every referenced menu at its current name and price. Nothing is
// persisted unless all items resolve to an available menu.
func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	if req.TableNumber <= 0 || len(req.Items) == 0 {
		return nil, invalid("", "Table number and items are required.")
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	var total float64
	for _, it := range req.Items {
		quantity := it.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 0 {
			return nil, invalid("quantity", "Quantity for menu item %d must be at least 1.", it.MenuID)
		}
		if quantity > MaxItemQuantity {
			return nil, invalid("quantity", "Quantity for menu item %d must be at most %d.", it.MenuID, MaxItemQuantity)
		}

		menu, err := s.menus.FindByID(ctx, it.MenuID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, invalid("menuId", "Menu item %d not found.", it.MenuID)
			}
			return nil, fmt.Errorf("load menu %d: %w", it.MenuID, err)
		}
		if !menu.IsAvailable {
			return nil, invalid("menuId", "%s is not available.", menu.Name)
		}

		items = append(items, models.OrderItem{
			MenuID:   menu.ID,
			Name:     menu.Name,
			Price:    menu.Price,
			Quantity: quantity,
			Note:     it.Note,
		})
		total += menu.Price * float64(quantity)
	}

	total = roundPrice(total)
	if total > MaxPrice {
		return nil, invalid("items", "Order total exceeds the maximum of %.2f.", MaxPrice)
	}

	order := &models.Order{
		TableNumber: req.TableNumber,
		Items:       items,
		Status:      models.OrderStatusPending,
		TotalPrice:  total,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		if errors.Is(err, repositories.ErrOutOfRange) {
			return nil, invalid("items", "Order total exceeds the maximum of %.2f.", MaxPrice)
		}
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	if filter.Status != "" && !models.ValidOrderStatus(filter.Status) {
		return nil, invalid("status", "Invalid status. Must be one of: %s", strings.Join(models.OrderStatuses, ", "))
	}
	return s.orders.FindAll(ctx, filter)
}

func (s *OrderService) ListByTable(ctx context.Context, tableNumber int, status string) ([]models.Order, error) {
	return s.List(ctx, models.OrderFilter{Status: status, TableNumber: &tableNumber})
}

func (s *OrderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// UpdateStatus accepts any known status regardless of the current one.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, invalid("status", "Invalid status. Must be one of: %s", strings.Join(models.OrderStatuses, ", "))
	}
	return s.orders.UpdateStatus(ctx, id, status)
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}
