package api

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"table-order/app"
	"table-order/config"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		cfg := config.LoadConfig()
		cfg.AppEnv = "production"

		application, err := app.New(context.Background(), cfg)
		if err != nil {
			log.Printf("Failed to initialize app: %v", err)
			return
		}
		router = application.Router
	})
}

// Handler is the serverless entry point; connections live for the lifetime of the instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if router == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"success":false,"message":"Service unavailable"}`))
		return
	}
	router.ServeHTTP(w, r)
}
