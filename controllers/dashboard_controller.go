package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"table-order/models"
)

type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

type DashboardController struct {
	service DashboardService
}

func NewDashboardController(service DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

// @Summary Dashboard statistics
// @Description Admin only. Computed on every request.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.DashboardStats}
// @Failure 403 {object} models.ErrorResponse
// @Router /dashboard [get]
func (ctrl *DashboardController) GetStats(c *gin.Context) {
	stats, err := ctrl.service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Not found")
		return
	}

	respondOK(c, http.StatusOK, "Dashboard statistics retrieved", stats)
}
