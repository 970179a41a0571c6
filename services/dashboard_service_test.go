package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"table-order/models"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	got := startOfDay(time.Date(2026, 3, 14, 0, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()
	orders, menus := newMemOrders(), newMemMenus()
	categories, users := newMemCategories(), newMemUsers()

	require.NoError(t, categories.Create(ctx, &models.Category{Name: "Rice", IsActive: true}))
	require.NoError(t, users.Create(ctx, &models.User{Username: "admin", Role: models.RoleAdmin}))
	require.NoError(t, menus.Create(ctx, &models.Menu{Name: "Fried Rice", Price: 60, CategoryID: 1, IsAvailable: true}))
	require.NoError(t, menus.Create(ctx, &models.Menu{Name: "Iced Tea", Price: 25, CategoryID: 1, IsAvailable: false}))

	now := time.Date(2026, 5, 2, 15, 0, 0, 0, time.Local)
	yesterday := now.Add(-24 * time.Hour)

	place := func(at time.Time, status string, items ...models.OrderItem) {
		var total float64
		for _, it := range items {
			total += it.Price * float64(it.Quantity)
		}
		require.NoError(t, orders.Create(ctx, &models.Order{
			TableNumber: 1, Items: items, Status: status, TotalPrice: total, CreatedAt: at,
		}))
	}
	rice := func(q int) models.OrderItem { return models.OrderItem{MenuID: 1, Name: "Fried Rice", Price: 60, Quantity: q} }
	tea := func(q int) models.OrderItem { return models.OrderItem{MenuID: 2, Name: "Iced Tea", Price: 25, Quantity: q} }

	place(yesterday, models.OrderStatusCompleted, tea(5))
	place(now.Add(-2*time.Hour), models.OrderStatusCooking, rice(2))
	place(now.Add(-time.Hour), models.OrderStatusPending, rice(1), tea(1))

	svc := NewDashboardService(orders, menus, categories, users)
	svc.now = func() time.Time { return now }

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStats{
		Total: 3, Pending: 1, Cooking: 1, Completed: 1,
		Today: 2, TodayRevenue: 120 + 85,
	}, stats.Orders)
	assert.Equal(t, time.Date(2026, 5, 2, 0, 0, 0, 0, time.Local), orders.since)
	assert.Equal(t, models.MenuStats{Total: 2, Available: 1}, stats.Menus)
	assert.Equal(t, 1, stats.Categories.Total)
	assert.Equal(t, 1, stats.Users.Total)

	require.Len(t, stats.RecentOrders, 3)
	assert.Equal(t, int64(3), stats.RecentOrders[0].ID)

	require.Len(t, stats.PopularItems, 2)
	assert.Equal(t, models.PopularItem{MenuID: 2, Name: "Iced Tea", Count: 6}, stats.PopularItems[0])
	assert.Equal(t, models.PopularItem{MenuID: 1, Name: "Fried Rice", Count: 3}, stats.PopularItems[1])
}

func TestDashboardService_RecentOrdersCappedAtTen(t *testing.T) {
	ctx := context.Background()
	orders := newMemOrders()
	for i := 0; i < 12; i++ {
		require.NoError(t, orders.Create(ctx, &models.Order{TableNumber: 1, Status: models.OrderStatusPending}))
	}

	svc := NewDashboardService(orders, newMemMenus(), newMemCategories(), newMemUsers())
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Len(t, stats.RecentOrders, 10)
	assert.Equal(t, 12, stats.Orders.Total)
	assert.Equal(t, 12, stats.Orders.Today)
	assert.Empty(t, stats.PopularItems)
}
