package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"table-order/models"
)

type TableService interface {
	List(ctx context.Context) ([]models.Table, error)
}

type TableController struct {
	service TableService
}

func NewTableController(service TableService) *TableController {
	return &TableController{service: service}
}

// @Summary List tables
// @Description Admin only. Ordered by table number.
// @Tags Tables
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response{data=[]models.Table}
// @Router /tables [get]
func (ctrl *TableController) GetTables(c *gin.Context) {
	tables, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Table not found.")
		return
	}

	respondOK(c, http.StatusOK, "Tables retrieved", tables)
}
