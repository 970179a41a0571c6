package models

import "time"

const (
	RoleAdmin    = "admin"
	RoleKitchen  = "kitchen"
	RoleCustomer = "customer"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleKitchen, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"-"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"isActive"`
	TableNumber *int      `json:"tableNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Identity is whoever a bearer token resolved to. Persisted users carry User;
// QR-issued table tokens only carry a role and a table number.
type Identity struct {
	UserID      int64  `json:"id,omitempty"`
	Username    string `json:"username,omitempty"`
	Role        string `json:"role"`
	TableNumber *int   `json:"tableNumber,omitempty"`
	IsTemporary bool   `json:"isTemporary,omitempty"`
	User        *User  `json:"-"`
}

// HasRole reports whether the identity satisfies one of roles. Admin satisfies every check.
func (i *Identity) HasRole(roles ...string) bool {
	if i == nil {
		return false
	}
	if i.Role == RoleAdmin {
		return true
	}
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}
