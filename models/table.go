package models

import "time"

type Table struct {
	ID          int64     `json:"id"`
	TableNumber int       `json:"tableNumber"`
	QRCode      string    `json:"qrCode"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
