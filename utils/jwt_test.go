package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	tests := []struct {
		name        string
		generate    func() (string, error)
		userID      int64
		tableNumber int
		role        string
	}{
		{
			name:     "user token",
			generate: func() (string, error) { return GenerateUserToken(12, "kitchen", "s3cret", time.Hour) },
			userID:   12,
			role:     "kitchen",
		},
		{
			name:        "table token",
			generate:    func() (string, error) { return GenerateTableToken(4, "customer", "s3cret", time.Hour) },
			tableNumber: 4,
			role:        "customer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tt.generate()
			require.NoError(t, err)

			claims, err := ValidateToken(token, "s3cret")
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.tableNumber, claims.TableNumber)
			assert.Equal(t, tt.role, claims.Role)
			assert.NotNil(t, claims.ExpiresAt)
		})
	}
}

func TestValidateTokenRejects(t *testing.T) {
	expired, err := GenerateUserToken(1, "admin", "s3cret", -time.Minute)
	require.NoError(t, err)

	wrongSecret, err := GenerateUserToken(1, "admin", "other", time.Hour)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 1, Role: "admin"}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		UserID:           1,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":      expired,
		"wrong secret": wrongSecret,
		"no expiry":    noExpiry,
		"wrong alg":    wrongAlg,
		"garbage":      "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateToken(token, "s3cret")
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
