package services

import (
	"context"
	"fmt"
	"time"

	"table-order/models"
)

const (
	recentOrderLimit = 10
	popularItemLimit = 5
)

type DashboardService struct {
	orders     OrderStore
	menus      MenuStore
	categories CategoryStore
	users      UserStore
	now        func() time.Time
}

func NewDashboardService(orders OrderStore, menus MenuStore, categories CategoryStore, users UserStore) *DashboardService {
	return &DashboardService{
		orders:     orders,
		menus:      menus,
		categories: categories,
		users:      users,
		now:        time.Now,
	}
}

// startOfDay is local midnight of t.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	orderStats, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	orderStats.Today, orderStats.TodayRevenue, err = s.orders.SummarySince(ctx, startOfDay(s.now()))
	if err != nil {
		return nil, fmt.Errorf("summarize today's orders: %w", err)
	}

	totalMenus, availableMenus, err := s.menus.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count menus: %w", err)
	}

	totalCategories, err := s.categories.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	recent, err := s.orders.Recent(ctx, recentOrderLimit)
	if err != nil {
		return nil, fmt.Errorf("load recent orders: %w", err)
	}

	popular, err := s.orders.PopularItems(ctx, popularItemLimit)
	if err != nil {
		return nil, fmt.Errorf("load popular items: %w", err)
	}

	return &models.DashboardStats{
		Orders:       orderStats,
		Menus:        models.MenuStats{Total: totalMenus, Available: availableMenus},
		Categories:   models.CountStats{Total: totalCategories},
		Users:        models.CountStats{Total: totalUsers},
		RecentOrders: recent,
		PopularItems: popular,
	}, nil
}
