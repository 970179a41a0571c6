package models

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type QRLoginRequest struct {
	QRCode string `json:"qrCode" binding:"required"`
}

type CreateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Role        string `json:"role"`
	TableNumber *int   `json:"tableNumber"`
}

type UpdateUserRequest struct {
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	Role        *string `json:"role"`
	TableNumber *int    `json:"tableNumber"`
	IsActive    *bool   `json:"isActive"`
}
