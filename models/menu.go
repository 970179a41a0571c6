package models

import "time"

type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Menu struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Image       string       `json:"image"`
	CategoryID  int64        `json:"categoryId"`
	Category    *CategoryRef `json:"category,omitempty"`
	IsAvailable bool         `json:"isAvailable"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type MenuFilter struct {
	CategoryID *int64
	Available  *bool
}

type CreateMenuRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
	CategoryID  int64    `json:"category"`
	IsAvailable *bool    `json:"isAvailable"`
}

type UpdateMenuRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	CategoryID  *int64   `json:"category"`
	IsAvailable *bool    `json:"isAvailable"`
}
