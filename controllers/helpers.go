package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"table-order/middleware"
	"table-order/models"
	"table-order/services"
)

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondFail(c *gin.Context, status int, message, detail string) {
	c.JSON(status, models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// respondError maps service errors to status codes. notFound is the message used for 404.
func respondError(c *gin.Context, err error, notFound string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		respondFail(c, http.StatusBadRequest, ve.Message, ve.Field)
	case errors.Is(err, services.ErrNotFound):
		respondFail(c, http.StatusNotFound, notFound, "")
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInactiveAccount),
		errors.Is(err, services.ErrInvalidQRCode):
		respondFail(c, http.StatusUnauthorized, err.Error(), "")
	case errors.Is(err, services.ErrUploadUnavailable):
		respondFail(c, http.StatusServiceUnavailable, err.Error(), "")
	default:
		log.Printf("[%s] %s %s failed: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
		respondFail(c, http.StatusInternalServerError, "Internal server error", "")
	}
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondFail(c, http.StatusBadRequest, "Invalid "+name, "")
		return 0, false
	}
	return id, true
}

// optionalBool reads a true/false query parameter; absent means no filter.
func optionalBool(c *gin.Context, name string) (*bool, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid "+name+" parameter", "")
		return nil, false
	}
	return &v, true
}
