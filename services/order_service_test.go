package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"table-order/models"
	"table-order/repositories"
)

func addMenu(t *testing.T, menus *memMenus, name string, price float64, available bool) *models.Menu {
	t.Helper()
	m := &models.Menu{Name: name, Price: price, CategoryID: 1, IsAvailable: available}
	require.NoError(t, menus.Create(context.Background(), m))
	return m
}

func TestOrderService_CreateComputesTotalFromMenuPrices(t *testing.T) {
	ctx := context.Background()
	menus, orders := newMemMenus(), newMemOrders()
	friedRice := addMenu(t, menus, "Pork Fried Rice", 60, true)
	svc := NewOrderService(orders, menus)

	order, err := svc.Create(ctx, models.CreateOrderRequest{
		TableNumber: 3,
		Items:       []models.OrderItemRequest{{MenuID: friedRice.ID, Quantity: 2, Note: "no chili"}},
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 3, order.TableNumber)
	assert.InDelta(t, 120.0, order.TotalPrice, 0.0001)
	require.Len(t, order.Items, 1)
	assert.Equal(t, models.OrderItem{
		MenuID:   friedRice.ID,
		Name:     "Pork Fried Rice",
		Price:    60,
		Quantity: 2,
		Note:     "no chili",
	}, order.Items[0])
}

func TestOrderService_CreateTotalMatchesSumOfItems(t *testing.T) {
	ctx := context.Background()
	menus, orders := newMemMenus(), newMemOrders()
	a := addMenu(t, menus, "Thai Iced Tea", 25, true)
	b := addMenu(t, menus, "Pad Thai with Shrimp", 80, true)
	c := addMenu(t, menus, "Coconut Ice Cream", 30.5, true)
	svc := NewOrderService(orders, menus)

	order, err := svc.Create(ctx, models.CreateOrderRequest{
		TableNumber: 1,
		Items: []models.OrderItemRequest{
			{MenuID: a.ID, Quantity: 3},
			{MenuID: b.ID},
			{MenuID: c.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	var sum float64
	for _, it := range order.Items {
		sum += it.Price * float64(it.Quantity)
	}
	assert.InDelta(t, sum, order.TotalPrice, 0.0001)
	assert.InDelta(t, 3*25+80+2*30.5, order.TotalPrice, 0.0001)
	assert.Equal(t, 1, order.Items[1].Quantity, "omitted quantity defaults to 1")
}

func TestOrderService_CreateRejectsInvalidRequests(t *testing.T) {
	ctx := context.Background()
	menus := newMemMenus()
	available := addMenu(t, menus, "Iced Coffee", 35, true)
	soldOut := addMenu(t, menus, "Lod Chong Singapore", 35, false)
	platter := addMenu(t, menus, "Wagyu Banquet Platter", 60_000_000, true)

	tests := []struct {
		name    string
		req     models.CreateOrderRequest
		message string
	}{
		{
			name:    "missing table number",
			req:     models.CreateOrderRequest{Items: []models.OrderItemRequest{{MenuID: available.ID}}},
			message: "Table number and items are required.",
		},
		{
			name:    "no items",
			req:     models.CreateOrderRequest{TableNumber: 2},
			message: "Table number and items are required.",
		},
		{
			name:    "unknown menu",
			req:     models.CreateOrderRequest{TableNumber: 2, Items: []models.OrderItemRequest{{MenuID: 999}}},
			message: "Menu item 999 not found.",
		},
		{
			name: "unavailable menu after an available one",
			req: models.CreateOrderRequest{TableNumber: 2, Items: []models.OrderItemRequest{
				{MenuID: available.ID, Quantity: 1},
				{MenuID: soldOut.ID, Quantity: 1},
			}},
			message: "Lod Chong Singapore is not available.",
		},
		{
			name:    "negative quantity",
			req:     models.CreateOrderRequest{TableNumber: 2, Items: []models.OrderItemRequest{{MenuID: available.ID, Quantity: -1}}},
			message: "Quantity for menu item 1 must be at least 1.",
		},
		{
			name:    "quantity above the per-line cap",
			req:     models.CreateOrderRequest{TableNumber: 2, Items: []models.OrderItemRequest{{MenuID: available.ID, Quantity: 3_000_000_000}}},
			message: "Quantity for menu item 1 must be at most 1000.",
		},
		{
			name:    "total beyond storable range",
			req:     models.CreateOrderRequest{TableNumber: 2, Items: []models.OrderItemRequest{{MenuID: platter.ID, Quantity: 2}}},
			message: "Order total exceeds the maximum of 99999999.99.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := newMemOrders()
			svc := NewOrderService(orders, menus)

			order, err := svc.Create(ctx, tt.req)
			require.Error(t, err)
			assert.Nil(t, order)
			assert.True(t, IsValidation(err))
			assert.Equal(t, tt.message, err.Error())
			assert.Zero(t, orders.created, "nothing may be persisted")
		})
	}
}

func TestOrderService_ItemsAreSnapshots(t *testing.T) {
	ctx := context.Background()
	menus, orders := newMemMenus(), newMemOrders()
	categories := newMemCategories()
	require.NoError(t, categories.Create(ctx, &models.Category{Name: "Rice", IsActive: true}))
	menu := addMenu(t, menus, "Crispy Pork on Rice", 65, true)

	orderSvc := NewOrderService(orders, menus)
	menuSvc := NewMenuService(menus, categories, nil, nil)

	order, err := orderSvc.Create(ctx, models.CreateOrderRequest{
		TableNumber: 5,
		Items:       []models.OrderItemRequest{{MenuID: menu.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	newName, newPrice := "Crispy Pork Deluxe", 99.0
	_, err = menuSvc.Update(ctx, menu.ID, models.UpdateMenuRequest{Name: &newName, Price: &newPrice})
	require.NoError(t, err)
	require.NoError(t, menuSvc.Delete(ctx, menu.ID))

	stored, err := orderSvc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Crispy Pork on Rice", stored.Items[0].Name)
	assert.InDelta(t, 65.0, stored.Items[0].Price, 0.0001)
	assert.InDelta(t, 65.0, stored.TotalPrice, 0.0001)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	menus, orders := newMemMenus(), newMemOrders()
	menu := addMenu(t, menus, "Tom Yum Noodle Soup", 55, true)
	svc := NewOrderService(orders, menus)

	order, err := svc.Create(ctx, models.CreateOrderRequest{
		TableNumber: 4,
		Items:       []models.OrderItemRequest{{MenuID: menu.ID}},
	})
	require.NoError(t, err)

	t.Run("any known status is accepted regardless of the current one", func(t *testing.T) {
		for _, status := range []string{models.OrderStatusCompleted, models.OrderStatusPending, models.OrderStatusCooking} {
			updated, err := svc.UpdateStatus(ctx, order.ID, status)
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
		}
	})

	t.Run("unknown status is rejected and the order is unchanged", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, order.ID, "served")
		require.Error(t, err)
		assert.True(t, IsValidation(err))

		stored, err := svc.Get(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCooking, stored.Status)
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, 404, models.OrderStatusCooking)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOrderService_ListFilters(t *testing.T) {
	ctx := context.Background()
	menus, orders := newMemMenus(), newMemOrders()
	menu := addMenu(t, menus, "Iced Coffee", 35, true)
	svc := NewOrderService(orders, menus)

	for _, table := range []int{1, 2, 1} {
		_, err := svc.Create(ctx, models.CreateOrderRequest{
			TableNumber: table,
			Items:       []models.OrderItemRequest{{MenuID: menu.ID}},
		})
		require.NoError(t, err)
	}
	_, err := svc.UpdateStatus(ctx, 1, models.OrderStatusCompleted)
	require.NoError(t, err)

	byTable, err := svc.ListByTable(ctx, 1, "")
	require.NoError(t, err)
	require.Len(t, byTable, 2)
	assert.Equal(t, int64(3), byTable[0].ID, "newest first")

	pending, err := svc.ListByTable(ctx, 1, models.OrderStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(3), pending[0].ID)

	_, err = svc.List(ctx, models.OrderFilter{Status: "bogus"})
	assert.True(t, IsValidation(err))
}

func TestOrderService_CreateRoundsTotalToCents(t *testing.T) {
	ctx := context.Background()
	menus, orders := newMemMenus(), newMemOrders()
	a := addMenu(t, menus, "Lime Wedge", 0.1, true)
	b := addMenu(t, menus, "Chili Flakes", 0.2, true)
	svc := NewOrderService(orders, menus)

	order, err := svc.Create(ctx, models.CreateOrderRequest{
		TableNumber: 1,
		Items:       []models.OrderItemRequest{{MenuID: a.ID}, {MenuID: b.ID}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.3, order.TotalPrice)

	stored, err := svc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.3, stored.TotalPrice)
}

type rangeLimitedOrders struct {
	*memOrders
}

func (rangeLimitedOrders) Create(context.Context, *models.Order) error {
	return fmt.Errorf("insert order: %w", repositories.ErrOutOfRange)
}

func TestOrderService_CreateReportsStoreRangeErrorAsValidation(t *testing.T) {
	menus := newMemMenus()
	menu := addMenu(t, menus, "Iced Coffee", 35, true)
	svc := NewOrderService(rangeLimitedOrders{newMemOrders()}, menus)

	_, err := svc.Create(context.Background(), models.CreateOrderRequest{
		TableNumber: 1,
		Items:       []models.OrderItemRequest{{MenuID: menu.ID}},
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err), "got %v", err)
}
