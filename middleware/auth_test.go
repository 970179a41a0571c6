package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"table-order/models"
)

type stubAuthenticator map[string]*models.Identity

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*models.Identity, error) {
	identity, ok := s[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return identity, nil
}

type authenticatorFunc func(ctx context.Context, token string) (*models.Identity, error)

func (f authenticatorFunc) Authenticate(ctx context.Context, token string) (*models.Identity, error) {
	return f(ctx, token)
}

func tableNumber(n int) *int { return &n }

var identities = stubAuthenticator{
	"admin":    {UserID: 1, Username: "admin", Role: models.RoleAdmin},
	"kitchen":  {UserID: 2, Username: "kitchen", Role: models.RoleKitchen},
	"customer": {UserID: 3, Username: "customer", Role: models.RoleCustomer},
	"table":    {Role: models.RoleCustomer, TableNumber: tableNumber(5), IsTemporary: true},
}

func newGuardedRouter(guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", AuthMiddleware(identities), guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": CurrentIdentity(c).Role})
	})
	return r
}

func doGet(r http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_RejectsBadHeaders(t *testing.T) {
	r := newGuardedRouter(func(c *gin.Context) { c.Next() })

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic admin"},
		{"empty token", "Bearer "},
		{"unknown token", "Bearer forged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestAuthMiddleware_HidesTokenErrorDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := authenticatorFunc(func(context.Context, string) (*models.Identity, error) {
		return nil, errors.New("invalid token: token has invalid claims: token is expired")
	})
	r := gin.New()
	r.GET("/guarded", AuthMiddleware(auth), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doGet(r, "Bearer expired")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid token."}`, w.Body.String())
}

func TestRoleGuards(t *testing.T) {
	tests := []struct {
		guard   string
		handler gin.HandlerFunc
		allowed map[string]bool
	}{
		{"admin", RequireAdmin(), map[string]bool{"admin": true}},
		{"kitchen", RequireKitchen(), map[string]bool{"admin": true, "kitchen": true}},
		{"customer", RequireCustomer(), map[string]bool{"admin": true, "customer": true, "table": true}},
	}

	for _, tt := range tests {
		r := newGuardedRouter(tt.handler)
		for token := range identities {
			t.Run(tt.guard+"/"+token, func(t *testing.T) {
				w := doGet(r, "Bearer "+token)
				if tt.allowed[token] {
					assert.Equal(t, http.StatusOK, w.Code)
				} else {
					assert.Equal(t, http.StatusForbidden, w.Code)
				}
			})
		}
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecoveryReturnsJSON500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	r.NoRoute(NotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Route not found")
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		frontendURL string
		origin      string
		want        string
	}{
		{"any origin when unset", "", "http://frontend.test", "*"},
		{"configured origin", "http://localhost:5173", "http://localhost:5173", "http://localhost:5173"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORSMiddleware(tt.frontendURL))
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
