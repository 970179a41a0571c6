package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"table-order/models"
)

const IdentityKey = "identity"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Identity, error)
}

func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Access denied. No token provided.",
			})
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), tokenParts[1])
		if err != nil {
			log.Printf("[%s] token rejected: %v", GetRequestID(c), err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid token.",
			})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by AuthMiddleware, or nil.
func CurrentIdentity(c *gin.Context) *models.Identity {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*models.Identity)
	return identity
}

func requireRole(message string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authentication required",
			})
			return
		}

		if !identity.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: message,
			})
			return
		}

		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return requireRole("Access denied. Admin only.", models.RoleAdmin)
}

// RequireKitchen lets kitchen staff and admins through.
func RequireKitchen() gin.HandlerFunc {
	return requireRole("Access denied. Kitchen staff only.", models.RoleKitchen)
}

// RequireCustomer lets customers and admins through.
func RequireCustomer() gin.HandlerFunc {
	return requireRole("Access denied. Customer only.", models.RoleCustomer)
}
