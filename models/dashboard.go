package models

type OrderStats struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	Cooking      int     `json:"cooking"`
	Completed    int     `json:"completed"`
	Today        int     `json:"today"`
	TodayRevenue float64 `json:"todayRevenue"`
}

type MenuStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
}

type CountStats struct {
	Total int `json:"total"`
}

type PopularItem struct {
	MenuID int64  `json:"menuId"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

type DashboardStats struct {
	Orders       OrderStats    `json:"orders"`
	Menus        MenuStats     `json:"menus"`
	Categories   CountStats    `json:"categories"`
	Users        CountStats    `json:"users"`
	RecentOrders []Order       `json:"recentOrders"`
	PopularItems []PopularItem `json:"popularItems"`
}
