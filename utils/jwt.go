package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries either a user id (password login) or a table number (QR login).
type Claims struct {
	UserID      int64  `json:"userId,omitempty"`
	TableNumber int    `json:"tableNumber,omitempty"`
	Role        string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func GenerateUserToken(userID int64, role, secret string, ttl time.Duration) (string, error) {
	return sign(Claims{UserID: userID, Role: role}, secret, ttl)
}

func GenerateTableToken(tableNumber int, role, secret string, ttl time.Duration) (string, error) {
	return sign(Claims{TableNumber: tableNumber, Role: role}, secret, ttl)
}

func sign(claims Claims, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
